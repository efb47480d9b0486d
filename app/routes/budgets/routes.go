package budgets

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/skanda13/Finance-Tracker/app/routes/auth"
)

func SetupBudgetsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/budgets")
	api.Use(auth.Protected(db))
	api.Get("/", GetBudgetsAPI(db))
	api.Get("/:id", GetBudgetAPI(db))
	api.Post("/", CreateBudgetAPI(db))
	api.Put("/:id", UpdateBudgetAPI(db))
	api.Patch("/:id/actual", UpdateActualAPI(db))
	api.Delete("/:id", DeleteBudgetAPI(db))
}
