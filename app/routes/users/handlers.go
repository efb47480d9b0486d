package users

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/skanda13/Finance-Tracker/app/database"
	"github.com/skanda13/Finance-Tracker/app/models"
	"github.com/skanda13/Finance-Tracker/app/routes/auth"
)

type profileResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Settings models.Settings `json:"settings"`
}

func GetMeAPI() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := auth.CurrentUser(c)
		return c.JSON(profileResponse{
			ID:       user.ID,
			Name:     user.Name,
			Email:    user.Email,
			Settings: user.Settings,
		})
	}
}

// UpdateProfileAPI merges name and settings into the authenticated user.
// Settings merge shallowly: only the keys present in the payload change.
// Email and password are untouched no matter what the payload carries.
func UpdateProfileAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type settingsPatch struct {
			Currency   *string            `json:"currency"`
			Theme      *models.Theme      `json:"theme"`
			DateFormat *models.DateFormat `json:"dateFormat"`
		}
		type profileRequest struct {
			Name     *string        `json:"name"`
			Settings *settingsPatch `json:"settings"`
		}

		var req profileRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
		}

		user := auth.CurrentUser(c)

		if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
			user.Name = strings.TrimSpace(*req.Name)
		}
		if req.Settings != nil {
			if req.Settings.Currency != nil {
				user.Settings.Currency = *req.Settings.Currency
			}
			if req.Settings.Theme != nil {
				if !req.Settings.Theme.Valid() {
					return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid theme"})
				}
				user.Settings.Theme = *req.Settings.Theme
			}
			if req.Settings.DateFormat != nil {
				if !req.Settings.DateFormat.Valid() {
					return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid date format"})
				}
				user.Settings.DateFormat = *req.Settings.DateFormat
			}
		}

		if err := database.UpdateUserProfile(db, user); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}

		return c.JSON(profileResponse{
			ID:       user.ID,
			Name:     user.Name,
			Email:    user.Email,
			Settings: user.Settings,
		})
	}
}
