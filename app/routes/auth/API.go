package auth

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/skanda13/Finance-Tracker/app/database"
	"github.com/skanda13/Finance-Tracker/app/models"
)

type authResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Settings models.Settings `json:"settings"`
	Token    string          `json:"token"`
}

func RegisterAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type registerRequest struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}

		var req registerRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
		}

		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" || req.Email == "" || req.Password == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Please provide all required fields"})
		}
		if !ValidEmail(req.Email) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Please enter a valid email address"})
		}
		if len(req.Password) < 6 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Password should be at least 6 characters"})
		}

		hashedPassword, err := HashPassword(req.Password)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}

		user := &models.User{
			Name:     req.Name,
			Email:    database.NormalizeEmail(req.Email),
			Password: hashedPassword,
			Settings: models.DefaultSettings(),
		}

		if err := database.CreateUser(db, user); err != nil {
			if errors.Is(err, database.ErrDuplicate) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "User already exists"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}

		token, err := GenerateJWT(user.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to generate token"})
		}

		return c.Status(fiber.StatusCreated).JSON(authResponse{
			ID:       user.ID,
			Name:     user.Name,
			Email:    user.Email,
			Settings: user.Settings,
			Token:    token,
		})
	}
}

func LoginAPI(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type loginRequest struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}

		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
		}

		if req.Email == "" || req.Password == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Please provide email and password"})
		}

		// Unknown email and wrong password answer identically so the endpoint
		// cannot be used to enumerate accounts.
		user, err := database.GetUserByEmail(db, req.Email)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid credentials"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
		}

		if !CheckPasswordHash(req.Password, user.Password) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid credentials"})
		}

		token, err := GenerateJWT(user.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to generate token"})
		}

		return c.JSON(authResponse{
			ID:       user.ID,
			Name:     user.Name,
			Email:    user.Email,
			Settings: user.Settings,
			Token:    token,
		})
	}
}

// MeAPI returns the authenticated user without the password hash.
func MeAPI() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User not found"})
		}
		return c.JSON(user)
	}
}
