package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates the schema if it does not exist yet. Called once at
// boot; a failure here is fatal for the process.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			currency VARCHAR(10) NOT NULL DEFAULT '₹',
			theme VARCHAR(10) NOT NULL DEFAULT 'light',
			date_format VARCHAR(10) NOT NULL DEFAULT 'DD-MM-YYYY',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS incomes (
			id UUID PRIMARY KEY,
			source VARCHAR(255) NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			date TIMESTAMP WITH TIME ZONE NOT NULL,
			category VARCHAR(50) NOT NULL DEFAULT 'Other',
			notes TEXT NOT NULL DEFAULT '',
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id UUID PRIMARY KEY,
			description VARCHAR(255) NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			date TIMESTAMP WITH TIME ZONE NOT NULL,
			category VARCHAR(50) NOT NULL DEFAULT 'Other',
			payment_method VARCHAR(50) NOT NULL DEFAULT 'Other',
			notes TEXT NOT NULL DEFAULT '',
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS investments (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			date TIMESTAMP WITH TIME ZONE NOT NULL,
			type VARCHAR(50) NOT NULL DEFAULT 'Equity',
			returns VARCHAR(100) NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS budgets (
			id UUID PRIMARY KEY,
			category VARCHAR(50) NOT NULL DEFAULT 'Other',
			month VARCHAR(20) NOT NULL,
			budget_amount DOUBLE PRECISION NOT NULL,
			actual_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
			notes TEXT NOT NULL DEFAULT '',
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS financial_goals (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			target_amount DOUBLE PRECISION NOT NULL,
			current_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
			deadline TIMESTAMP WITH TIME ZONE NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating tables: %v", err)
			return err
		}
	}

	// The budgets unique index is load-bearing: the create/update pre-checks
	// race under concurrent requests, and this constraint is what guarantees
	// at most one budget per (user, category, month).
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_incomes_user_id ON incomes(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_incomes_date ON incomes(date)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_user_id ON expenses(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date)`,
		`CREATE INDEX IF NOT EXISTS idx_investments_user_id ON investments(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_budgets_user_id ON budgets(user_id)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_budgets_user_category_month ON budgets(user_id, category, month)`,
		`CREATE INDEX IF NOT EXISTS idx_financial_goals_user_id ON financial_goals(user_id)`,
	}

	for _, q := range indexes {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error creating indexes: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
