// Command seed wipes and repopulates a development database with the demo
// account and a handful of sample records. Never point this at production.
package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/skanda13/Finance-Tracker/app/config"
	"github.com/skanda13/Finance-Tracker/app/database"
	"github.com/skanda13/Finance-Tracker/app/models"
	"github.com/skanda13/Finance-Tracker/app/routes/auth"
	"github.com/skanda13/Finance-Tracker/app/routes/budgets"
	"github.com/skanda13/Finance-Tracker/app/routes/expenses"
	"github.com/skanda13/Finance-Tracker/app/routes/incomes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	log.Println("Clearing existing records...")
	for _, table := range []string{"incomes", "expenses", "budgets", "investments", "financial_goals", "users"} {
		if _, err := db.Exec(`DELETE FROM ` + table); err != nil {
			log.Fatalf("Failed to clear %s: %v", table, err)
		}
	}

	log.Println("Creating default user...")
	hashedPassword, err := auth.HashPassword("password123")
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}
	user := &models.User{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: hashedPassword,
		Settings: models.DefaultSettings(),
	}
	if err := database.CreateUser(db, user); err != nil {
		log.Fatal("Failed to create user:", err)
	}

	log.Println("Creating sample incomes...")
	sampleIncomes := []*models.Income{
		{
			Source:   "Salary",
			Amount:   50000,
			Date:     models.NewDate(time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC)),
			Category: models.IncomeEmployment,
			Notes:    "Monthly salary",
			UserID:   user.ID,
		},
		{
			Source:   "Freelance Project",
			Amount:   15000,
			Date:     models.NewDate(time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)),
			Category: models.IncomeSelfEmployment,
			Notes:    "Website development project",
			UserID:   user.ID,
		},
		{
			Source:   "Investment Dividend",
			Amount:   5000,
			Date:     models.NewDate(time.Date(2023, time.June, 20, 0, 0, 0, 0, time.UTC)),
			Category: models.IncomeInvestments,
			Notes:    "Quarterly dividend payment",
			UserID:   user.ID,
		},
	}
	for _, in := range sampleIncomes {
		if err := incomes.CreateIncome(db, in); err != nil {
			log.Fatal("Failed to create income:", err)
		}
	}

	log.Println("Creating sample expenses...")
	sampleExpenses := []*models.Expense{
		{
			Description:   "Rent",
			Amount:        15000,
			Date:          models.NewDate(time.Date(2023, time.June, 5, 0, 0, 0, 0, time.UTC)),
			Category:      models.ExpenseHousing,
			PaymentMethod: models.PaymentBankTransfer,
			Notes:         "Monthly rent",
			UserID:        user.ID,
		},
		{
			Description:   "Groceries",
			Amount:        4500,
			Date:          models.NewDate(time.Date(2023, time.June, 10, 0, 0, 0, 0, time.UTC)),
			Category:      models.ExpenseFood,
			PaymentMethod: models.PaymentUPI,
			UserID:        user.ID,
		},
		{
			Description:   "Fuel",
			Amount:        2000,
			Date:          models.NewDate(time.Date(2023, time.June, 12, 0, 0, 0, 0, time.UTC)),
			Category:      models.ExpenseTransportation,
			PaymentMethod: models.PaymentCreditCard,
			UserID:        user.ID,
		},
	}
	for _, e := range sampleExpenses {
		if err := expenses.CreateExpense(db, e); err != nil {
			log.Fatal("Failed to create expense:", err)
		}
	}

	log.Println("Creating sample budgets...")
	sampleBudgets := []*models.Budget{
		{
			Category:     models.ExpenseHousing,
			Month:        "June 2023",
			BudgetAmount: 16000,
			ActualAmount: 15000,
			UserID:       user.ID,
		},
		{
			Category:     models.ExpenseFood,
			Month:        "June 2023",
			BudgetAmount: 10000,
			ActualAmount: 4500,
			UserID:       user.ID,
		},
	}
	for _, b := range sampleBudgets {
		if err := budgets.CreateBudget(db, b); err != nil {
			log.Fatal("Failed to create budget:", err)
		}
	}

	log.Printf("Seed completed: user %s (%s)", user.Name, user.Email)
}
