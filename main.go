package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/skanda13/Finance-Tracker/app/config"
	"github.com/skanda13/Finance-Tracker/app/database"
	"github.com/skanda13/Finance-Tracker/app/routes/auth"
	"github.com/skanda13/Finance-Tracker/app/routes/budgets"
	"github.com/skanda13/Finance-Tracker/app/routes/expenses"
	"github.com/skanda13/Finance-Tracker/app/routes/goals"
	"github.com/skanda13/Finance-Tracker/app/routes/incomes"
	"github.com/skanda13/Finance-Tracker/app/routes/investments"
	"github.com/skanda13/Finance-Tracker/app/routes/users"
)

// customErrorHandler keeps every error response in the API's JSON shape.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if code == fiber.StatusNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Route not found"})
	}
	return c.Status(code).JSON(fiber.Map{"message": "Server error", "error": err.Error()})
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()
	db := config.GetDB()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:8080, http://localhost:5173, http://localhost:8081",
		AllowCredentials: true,
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to Finance Tracker API"})
	})

	// Setup auth routes
	auth.SetupAuthRoutes(app, db)

	// Setup profile routes
	users.SetupUsersRoutes(app, db)

	// Setup resource routes
	incomes.SetupIncomesRoutes(app, db)
	expenses.SetupExpensesRoutes(app, db)
	investments.SetupInvestmentsRoutes(app, db)
	budgets.SetupBudgetsRoutes(app, db)
	goals.SetupGoalsRoutes(app, db)

	// Anything still unmatched is a JSON 404
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Route not found"})
	})

	port := config.Port()
	log.Printf("Server running on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
