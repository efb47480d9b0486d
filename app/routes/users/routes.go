package users

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/skanda13/Finance-Tracker/app/routes/auth"
)

func SetupUsersRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/users")
	api.Use(auth.Protected(db))
	api.Get("/me", GetMeAPI())
	api.Put("/profile", UpdateProfileAPI(db))
}
