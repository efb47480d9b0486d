package incomes

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/skanda13/Finance-Tracker/app/routes/auth"
)

func SetupIncomesRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/incomes")
	api.Use(auth.Protected(db))
	api.Get("/", GetIncomesAPI(db))
	api.Get("/:id", GetIncomeAPI(db))
	api.Post("/", CreateIncomeAPI(db))
	api.Put("/:id", UpdateIncomeAPI(db))
	api.Delete("/:id", DeleteIncomeAPI(db))
}
