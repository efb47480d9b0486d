package budgets

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/skanda13/Finance-Tracker/app/database"
	"github.com/skanda13/Finance-Tracker/app/models"
	"github.com/skanda13/Finance-Tracker/app/routes/auth"
)

const duplicateBudgetMessage = "A budget for this category and month already exists"

func GetBudgetsAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		month := c.Query("month")
		budgets, err := GetAllBudgets(db, auth.CurrentUserID(c), month)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}
		return c.JSON(budgets)
	}
}

func GetBudgetAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !database.ValidID(id) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid budget ID"})
		}

		budget, err := GetBudgetByID(db, auth.CurrentUserID(c), id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Budget not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}
		return c.JSON(budget)
	}
}

func CreateBudgetAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type createRequest struct {
			Category     models.ExpenseCategory `json:"category"`
			Month        string                 `json:"month"`
			BudgetAmount *float64               `json:"budgetAmount"`
			ActualAmount *float64               `json:"actualAmount"`
			Notes        string                 `json:"notes"`
		}

		var req createRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
		}

		if req.Category == "" {
			req.Category = models.ExpenseOther
		}
		if !req.Category.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid budget category"})
		}
		if !models.ValidMonth(req.Month) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Month must be in the format 'Month YYYY', e.g., 'January 2023'"})
		}
		if req.BudgetAmount == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Budget amount is required"})
		}
		if *req.BudgetAmount < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Budget amount cannot be negative"})
		}

		actualAmount := 0.0
		if req.ActualAmount != nil {
			if *req.ActualAmount < 0 {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Actual amount cannot be negative"})
			}
			actualAmount = *req.ActualAmount
		}

		userID := auth.CurrentUserID(c)

		// Pre-check for a friendly error; the unique index is what actually
		// guarantees the invariant under concurrency.
		exists, err := BudgetExists(db, userID, req.Category, req.Month, "")
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}
		if exists {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": duplicateBudgetMessage})
		}

		budget := &models.Budget{
			Category:     req.Category,
			Month:        req.Month,
			BudgetAmount: *req.BudgetAmount,
			ActualAmount: actualAmount,
			Notes:        req.Notes,
			UserID:       userID,
		}

		if err := CreateBudget(db, budget); err != nil {
			if errors.Is(err, database.ErrDuplicate) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": duplicateBudgetMessage})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(budget)
	}
}

func UpdateBudgetAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !database.ValidID(id) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid budget ID"})
		}

		type updateRequest struct {
			Category     *models.ExpenseCategory `json:"category"`
			Month        *string                 `json:"month"`
			BudgetAmount *float64                `json:"budgetAmount"`
			ActualAmount *float64                `json:"actualAmount"`
			Notes        *string                 `json:"notes"`
		}

		var req updateRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
		}

		userID := auth.CurrentUserID(c)
		budget, err := GetBudgetByID(db, userID, id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Budget not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}

		categoryChanged := req.Category != nil && *req.Category != budget.Category
		monthChanged := req.Month != nil && *req.Month != budget.Month

		if req.Category != nil {
			budget.Category = *req.Category
		}
		if req.Month != nil {
			budget.Month = *req.Month
		}
		if req.BudgetAmount != nil {
			budget.BudgetAmount = *req.BudgetAmount
		}
		if req.ActualAmount != nil {
			budget.ActualAmount = *req.ActualAmount
		}
		if req.Notes != nil {
			budget.Notes = *req.Notes
		}

		if !budget.Category.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid budget category"})
		}
		if !models.ValidMonth(budget.Month) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Month must be in the format 'Month YYYY', e.g., 'January 2023'"})
		}
		if budget.BudgetAmount < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Budget amount cannot be negative"})
		}
		if budget.ActualAmount < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Actual amount cannot be negative"})
		}

		// Re-check uniqueness only when the identity tuple actually moved,
		// excluding the document being updated from the collision check.
		if categoryChanged || monthChanged {
			exists, err := BudgetExists(db, userID, budget.Category, budget.Month, budget.ID)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
			}
			if exists {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": duplicateBudgetMessage})
			}
		}

		if err := UpdateBudget(db, budget); err != nil {
			if errors.Is(err, database.ErrDuplicate) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": duplicateBudgetMessage})
			}
			if errors.Is(err, database.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Budget not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}
		return c.JSON(budget)
	}
}

// UpdateActualAPI sets actual_amount alone. Presence is "field in the JSON
// body", so an explicit 0 is accepted.
func UpdateActualAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !database.ValidID(id) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid budget ID"})
		}

		type actualRequest struct {
			ActualAmount *float64 `json:"actualAmount"`
		}

		var req actualRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
		}

		if req.ActualAmount == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Actual amount is required"})
		}
		if *req.ActualAmount < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Actual amount cannot be negative"})
		}

		userID := auth.CurrentUserID(c)
		if err := UpdateActualAmount(db, userID, id, *req.ActualAmount); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Budget not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}

		budget, err := GetBudgetByID(db, userID, id)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}
		return c.JSON(budget)
	}
}

func DeleteBudgetAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !database.ValidID(id) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid budget ID"})
		}

		if err := DeleteBudget(db, auth.CurrentUserID(c), id); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Budget not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}
		return c.JSON(fiber.Map{"message": "Budget removed"})
	}
}
