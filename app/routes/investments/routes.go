package investments

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/skanda13/Finance-Tracker/app/routes/auth"
)

func SetupInvestmentsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/investments")
	api.Use(auth.Protected(db))
	api.Get("/", GetInvestmentsAPI(db))
	api.Get("/:id", GetInvestmentAPI(db))
	api.Post("/", CreateInvestmentAPI(db))
	api.Put("/:id", UpdateInvestmentAPI(db))
	api.Delete("/:id", DeleteInvestmentAPI(db))
}
