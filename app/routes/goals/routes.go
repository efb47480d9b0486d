package goals

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/skanda13/Finance-Tracker/app/routes/auth"
)

func SetupGoalsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/goals")
	api.Use(auth.Protected(db))
	api.Get("/", GetGoalsAPI(db))
	api.Get("/:id", GetGoalAPI(db))
	api.Post("/", CreateGoalAPI(db))
	api.Put("/:id", UpdateGoalAPI(db))
	api.Delete("/:id", DeleteGoalAPI(db))
}
