package expenses

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/skanda13/Finance-Tracker/app/routes/auth"
)

func SetupExpensesRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/expenses")
	api.Use(auth.Protected(db))
	api.Get("/", GetExpensesAPI(db))
	api.Get("/:id", GetExpenseAPI(db))
	api.Post("/", CreateExpenseAPI(db))
	api.Put("/:id", UpdateExpenseAPI(db))
	api.Delete("/:id", DeleteExpenseAPI(db))
}
