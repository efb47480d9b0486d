package investments

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/skanda13/Finance-Tracker/app/database"
	"github.com/skanda13/Finance-Tracker/app/models"
	"github.com/skanda13/Finance-Tracker/app/routes/auth"
)

func GetInvestmentsAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		investments, err := GetAllInvestments(db, auth.CurrentUserID(c))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}
		return c.JSON(investments)
	}
}

func GetInvestmentAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !database.ValidID(id) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid investment ID"})
		}

		investment, err := GetInvestmentByID(db, auth.CurrentUserID(c), id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Investment not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}
		return c.JSON(investment)
	}
}

func CreateInvestmentAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type createRequest struct {
			Name    string                `json:"name"`
			Amount  *float64              `json:"amount"`
			Date    *models.Date          `json:"date"`
			Type    models.InvestmentType `json:"type"`
			Returns string                `json:"returns"`
			Notes   string                `json:"notes"`
		}

		var req createRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
		}

		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Investment name is required"})
		}
		if req.Amount == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Amount is required"})
		}
		if *req.Amount < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Amount cannot be negative"})
		}
		// Unlike incomes and expenses, the date never defaults to now.
		if req.Date == nil || req.Date.IsZero() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Date is required"})
		}
		if req.Type == "" {
			req.Type = models.InvestmentEquity
		}
		if !req.Type.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid investment type"})
		}
		if strings.TrimSpace(req.Returns) == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Return rate is required"})
		}

		investment := &models.Investment{
			Name:    req.Name,
			Amount:  *req.Amount,
			Date:    *req.Date,
			Type:    req.Type,
			Returns: strings.TrimSpace(req.Returns),
			Notes:   strings.TrimSpace(req.Notes),
			UserID:  auth.CurrentUserID(c),
		}

		if err := CreateInvestment(db, investment); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(investment)
	}
}

func UpdateInvestmentAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !database.ValidID(id) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid investment ID"})
		}

		type updateRequest struct {
			Name    *string                `json:"name"`
			Amount  *float64               `json:"amount"`
			Date    *models.Date           `json:"date"`
			Type    *models.InvestmentType `json:"type"`
			Returns *string                `json:"returns"`
			Notes   *string                `json:"notes"`
		}

		var req updateRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
		}

		investment, err := GetInvestmentByID(db, auth.CurrentUserID(c), id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Investment not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}

		if req.Name != nil {
			investment.Name = strings.TrimSpace(*req.Name)
		}
		if req.Amount != nil {
			investment.Amount = *req.Amount
		}
		if req.Date != nil {
			investment.Date = *req.Date
		}
		if req.Type != nil {
			investment.Type = *req.Type
		}
		if req.Returns != nil {
			investment.Returns = strings.TrimSpace(*req.Returns)
		}
		if req.Notes != nil {
			investment.Notes = *req.Notes
		}

		if investment.Name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Investment name is required"})
		}
		if investment.Amount < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Amount cannot be negative"})
		}
		if investment.Date.IsZero() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Date is required"})
		}
		if !investment.Type.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid investment type"})
		}
		if investment.Returns == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Return rate is required"})
		}

		if err := UpdateInvestment(db, investment); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Investment not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}
		return c.JSON(investment)
	}
}

func DeleteInvestmentAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !database.ValidID(id) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid investment ID"})
		}

		if err := DeleteInvestment(db, auth.CurrentUserID(c), id); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Investment not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}
		return c.JSON(fiber.Map{"message": "Investment removed"})
	}
}
