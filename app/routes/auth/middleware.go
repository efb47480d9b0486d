package auth

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/skanda13/Finance-Tracker/app/database"
	"github.com/skanda13/Finance-Tracker/app/models"
)

// Protected gates every resource route. It extracts the bearer token,
// verifies it, loads the referenced user and attaches it to the request, or
// rejects with 401. Registration and login are never wrapped by it.
func Protected(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not authorized, no token"})
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		userID, err := ValidateJWT(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not authorized, token failed"})
		}

		user, err := database.GetUserByID(db, userID)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not authorized, user no longer exists"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}

		c.Locals("user_id", user.ID)
		c.Locals("user", user)
		return c.Next()
	}
}

// CurrentUserID returns the authenticated user's id set by Protected.
func CurrentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}

// CurrentUser returns the authenticated user set by Protected.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}
