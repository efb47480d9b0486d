package incomes

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

func GetIncomesAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		incomes, err := GetAllIncomes(db, auth.CurrentUserID(c))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}
		return c.JSON(incomes)
	}
}

func GetIncomeAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !database.ValidID(id) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid income ID"})
		}

		income, err := GetIncomeByID(db, auth.CurrentUserID(c), id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Income not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}
		return c.JSON(income)
	}
}

func CreateIncomeAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type createRequest struct {
			Source   string                `json:"source"`
			Amount   *float64              `json:"amount"`
			Date     *models.Date          `json:"date"`
			Category models.IncomeCategory `json:"category"`
			Notes    string                `json:"notes"`
		}

		var req createRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
		}

		req.Source = strings.TrimSpace(req.Source)
		if req.Source == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Income source is required"})
		}
		if req.Amount == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Amount is required"})
		}
		if *req.Amount < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Amount cannot be negative"})
		}
		if req.Category == "" {
			req.Category = models.IncomeOther
		}
		if !req.Category.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid income category"})
		}

		date := models.NewDate(time.Now())
		if req.Date != nil && !req.Date.IsZero() {
			date = *req.Date
		}

		income := &models.Income{
			Source:   req.Source,
			Amount:   *req.Amount,
			Date:     date,
			Category: req.Category,
			Notes:    strings.TrimSpace(req.Notes),
			UserID:   auth.CurrentUserID(c),
		}

		if err := CreateIncome(db, income); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(income)
	}
}

// UpdateIncomeAPI merges the payload field by field: absent fields keep their
// stored value, present fields overwrite it.
func UpdateIncomeAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !database.ValidID(id) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid income ID"})
		}

		type updateRequest struct {
			Source   *string                `json:"source"`
			Amount   *float64               `json:"amount"`
			Date     *models.Date           `json:"date"`
			Category *models.IncomeCategory `json:"category"`
			Notes    *string                `json:"notes"`
		}

		var req updateRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
		}

		income, err := GetIncomeByID(db, auth.CurrentUserID(c), id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Income not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}

		if req.Source != nil {
			income.Source = strings.TrimSpace(*req.Source)
		}
		if req.Amount != nil {
			income.Amount = *req.Amount
		}
		if req.Date != nil {
			income.Date = *req.Date
		}
		if req.Category != nil {
			income.Category = *req.Category
		}
		if req.Notes != nil {
			income.Notes = *req.Notes
		}

		if income.Source == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Income source is required"})
		}
		if income.Amount < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Amount cannot be negative"})
		}
		if !income.Category.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid income category"})
		}

		if err := UpdateIncome(db, income); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Income not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}
		return c.JSON(income)
	}
}

func DeleteIncomeAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !database.ValidID(id) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid income ID"})
		}

		if err := DeleteIncome(db, auth.CurrentUserID(c), id); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Income not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}
		return c.JSON(fiber.Map{"message": "Income removed"})
	}
}
