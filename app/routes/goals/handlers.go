package goals

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/skanda13/Finance-Tracker/app/database"
	"github.com/skanda13/Finance-Tracker/app/models"
	"github.com/skanda13/Finance-Tracker/app/routes/auth"
)

func GetGoalsAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		goals, err := GetAllGoals(db, auth.CurrentUserID(c))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}
		return c.JSON(goals)
	}
}

func GetGoalAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !database.ValidID(id) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid goal ID"})
		}

		goal, err := GetGoalByID(db, auth.CurrentUserID(c), id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Goal not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}
		return c.JSON(goal)
	}
}

func CreateGoalAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type createRequest struct {
			Name          string       `json:"name"`
			TargetAmount  *float64     `json:"targetAmount"`
			CurrentAmount *float64     `json:"currentAmount"`
			Deadline      *models.Date `json:"deadline"`
			Notes         string       `json:"notes"`
		}

		var req createRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
		}

		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" || req.TargetAmount == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Please provide name and target amount"})
		}
		if *req.TargetAmount < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Target amount cannot be negative"})
		}
		if req.Deadline == nil || req.Deadline.IsZero() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Deadline is required"})
		}

		currentAmount := 0.0
		if req.CurrentAmount != nil {
			if *req.CurrentAmount < 0 {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Current amount cannot be negative"})
			}
			currentAmount = *req.CurrentAmount
		}

		goal := &models.FinancialGoal{
			Name:          req.Name,
			TargetAmount:  *req.TargetAmount,
			CurrentAmount: currentAmount,
			Deadline:      *req.Deadline,
			Notes:         strings.TrimSpace(req.Notes),
			UserID:        auth.CurrentUserID(c),
		}

		if err := CreateGoal(db, goal); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}
		return c.Status(fiber.StatusCreated).JSON(goal)
	}
}

func UpdateGoalAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !database.ValidID(id) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid goal ID"})
		}

		type updateRequest struct {
			Name          *string      `json:"name"`
			TargetAmount  *float64     `json:"targetAmount"`
			CurrentAmount *float64     `json:"currentAmount"`
			Deadline      *models.Date `json:"deadline"`
			Notes         *string      `json:"notes"`
		}

		var req updateRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
		}

		goal, err := GetGoalByID(db, auth.CurrentUserID(c), id)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Goal not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}

		if req.Name != nil {
			goal.Name = strings.TrimSpace(*req.Name)
		}
		if req.TargetAmount != nil {
			goal.TargetAmount = *req.TargetAmount
		}
		if req.CurrentAmount != nil {
			goal.CurrentAmount = *req.CurrentAmount
		}
		if req.Deadline != nil {
			goal.Deadline = *req.Deadline
		}
		if req.Notes != nil {
			goal.Notes = *req.Notes
		}

		if goal.Name == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Goal name is required"})
		}
		if goal.TargetAmount < 0 || goal.CurrentAmount < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Amount cannot be negative"})
		}
		if goal.Deadline.IsZero() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Deadline is required"})
		}

		if err := UpdateGoal(db, goal); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Goal not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}
		return c.JSON(goal)
	}
}

func DeleteGoalAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if !database.ValidID(id) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid goal ID"})
		}

		if err := DeleteGoal(db, auth.CurrentUserID(c), id); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Goal not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}
		return c.JSON(fiber.Map{"message": "Goal removed"})
	}
}
