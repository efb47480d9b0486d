package auth

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/auth")

	// Public routes
	api.Post("/register", RegisterAPI(db))
	api.Post("/login", LoginAPI(db))

	// Protected routes
	api.Get("/me", Protected(db), MeAPI())
}
