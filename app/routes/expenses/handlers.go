package expenses

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/skanda13/Finance-Tracker/app/database"
	"github.com/skanda13/Finance-Tracker/app/models"
	"github.com/skanda13/Finance-Tracker/app/routes/auth"
)

func GetExpensesAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		expenses, err := GetAllExpenses(db, auth.CurrentUserID(c))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}
		return c.JSON(expenses)
	}
}

func GetExpenseAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !database.ValidID(id) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid expense ID"})
		}

		expense, err := GetExpenseByID(db, auth.CurrentUserID(c), id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Expense not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}
		return c.JSON(expense)
	}
}

func CreateExpenseAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type createRequest struct {
			Description   string                 `json:"description"`
			Amount        *float64               `json:"amount"`
			Date          *models.Date           `json:"date"`
			Category      models.ExpenseCategory `json:"category"`
			PaymentMethod models.PaymentMethod   `json:"paymentMethod"`
			Notes         string                 `json:"notes"`
		}

		var req createRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
		}

		req.Description = strings.TrimSpace(req.Description)
		if req.Description == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Description is required"})
		}
		if req.Amount == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Amount is required"})
		}
		if *req.Amount < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Amount cannot be negative"})
		}
		if req.Category == "" {
			req.Category = models.ExpenseOther
		}
		if !req.Category.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid expense category"})
		}
		if req.PaymentMethod == "" {
			req.PaymentMethod = models.PaymentOther
		}
		if !req.PaymentMethod.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid payment method"})
		}

		date := models.NewDate(time.Now())
		if req.Date != nil && !req.Date.IsZero() {
			date = *req.Date
		}

		expense := &models.Expense{
			Description:   req.Description,
			Amount:        *req.Amount,
			Date:          date,
			Category:      req.Category,
			PaymentMethod: req.PaymentMethod,
			Notes:         strings.TrimSpace(req.Notes),
			UserID:        auth.CurrentUserID(c),
		}

		if err := CreateExpense(db, expense); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(expense)
	}
}

func UpdateExpenseAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !database.ValidID(id) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid expense ID"})
		}

		type updateRequest struct {
			Description   *string                 `json:"description"`
			Amount        *float64                `json:"amount"`
			Date          *models.Date            `json:"date"`
			Category      *models.ExpenseCategory `json:"category"`
			PaymentMethod *models.PaymentMethod   `json:"paymentMethod"`
			Notes         *string                 `json:"notes"`
		}

		var req updateRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
		}

		expense, err := GetExpenseByID(db, auth.CurrentUserID(c), id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Expense not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}

		if req.Description != nil {
			expense.Description = strings.TrimSpace(*req.Description)
		}
		if req.Amount != nil {
			expense.Amount = *req.Amount
		}
		if req.Date != nil {
			expense.Date = *req.Date
		}
		if req.Category != nil {
			expense.Category = *req.Category
		}
		if req.PaymentMethod != nil {
			expense.PaymentMethod = *req.PaymentMethod
		}
		if req.Notes != nil {
			expense.Notes = *req.Notes
		}

		if expense.Description == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Description is required"})
		}
		if expense.Amount < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Amount cannot be negative"})
		}
		if !expense.Category.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid expense category"})
		}
		if !expense.PaymentMethod.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid payment method"})
		}

		if err := UpdateExpense(db, expense); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Expense not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}
		return c.JSON(expense)
	}
}

func DeleteExpenseAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !database.ValidID(id) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid expense ID"})
		}

		if err := DeleteExpense(db, auth.CurrentUserID(c), id); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Expense not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}
		return c.JSON(fiber.Map{"message": "Expense removed"})
	}
}
