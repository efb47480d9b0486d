package budgets

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/skanda13/Finance-Tracker/app/database"
	"github.com/skanda13/Finance-Tracker/app/models"
)

const budgetColumns = `id, category, month, budget_amount, actual_amount, notes, user_id, created_at, updated_at`

func scanBudget(row *sql.Row) (*models.Budget, error) {
	b := &models.Budget{}
	err := row.Scan(
		&b.ID, &b.Category, &b.Month, &b.BudgetAmount, &b.ActualAmount,
		&b.Notes, &b.UserID, &b.CreatedAt, &b.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// GetAllBudgets lists a user's budgets category-ascending, optionally
// restricted to one month ("June 2023").
func GetAllBudgets(db *sql.DB, userID, month string) ([]*models.Budget, error) {
	query := `SELECT ` + budgetColumns + `
			  FROM budgets
			  WHERE user_id = $1`
	args := []interface{}{userID}

	if month != "" {
		query += ` AND month = $2`
		args = append(args, month)
	}
	query += ` ORDER BY category ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	budgets := []*models.Budget{} // Initialize to empty slice for non-null JSON
	for rows.Next() {
		b := &models.Budget{}
		err := rows.Scan(
			&b.ID, &b.Category, &b.Month, &b.BudgetAmount, &b.ActualAmount,
			&b.Notes, &b.UserID, &b.CreatedAt, &b.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

func GetBudgetByID(db *sql.DB, userID, id string) (*models.Budget, error) {
	query := `SELECT ` + budgetColumns + `
			  FROM budgets
			  WHERE id = $1 AND user_id = $2`
	return scanBudget(db.QueryRow(query, id, userID))
}

// BudgetExists reports whether the user already has a budget for the given
// category and month, ignoring excludeID (the document being updated).
func BudgetExists(db *sql.DB, userID string, category models.ExpenseCategory, month, excludeID string) (bool, error) {
	if excludeID == "" {
		// The id column is a UUID, so the no-exclusion case needs a
		// well-formed value that can never match a row.
		excludeID = uuid.Nil.String()
	}
	query := `SELECT EXISTS (
				SELECT 1 FROM budgets
				WHERE user_id = $1 AND category = $2 AND month = $3 AND id <> $4
			  )`

	var exists bool
	err := db.QueryRow(query, userID, category, month, excludeID).Scan(&exists)
	return exists, err
}

// CreateBudget inserts a budget. The unique index on
// (user_id, category, month) makes the conflict check atomic: even when two
// concurrent requests pass the handler's pre-check, one insert fails with
// ErrDuplicate.
func CreateBudget(db *sql.DB, b *models.Budget) error {
	b.ID = uuid.NewString()
	query := `INSERT INTO budgets (id, category, month, budget_amount, actual_amount, notes, user_id)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING created_at, updated_at`

	err := db.QueryRow(query, b.ID, b.Category, b.Month, b.BudgetAmount, b.ActualAmount, b.Notes, b.UserID).
		Scan(&b.CreatedAt, &b.UpdatedAt)
	if database.IsUniqueViolation(err) {
		return database.ErrDuplicate
	}
	return err
}

func UpdateBudget(db *sql.DB, b *models.Budget) error {
	query := `UPDATE budgets
			  SET category = $1, month = $2, budget_amount = $3, actual_amount = $4, notes = $5, updated_at = NOW()
			  WHERE id = $6 AND user_id = $7`

	result, err := db.Exec(query, b.Category, b.Month, b.BudgetAmount, b.ActualAmount, b.Notes, b.ID, b.UserID)
	if database.IsUniqueViolation(err) {
		return database.ErrDuplicate
	}
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return database.ErrNotFound
	}
	return nil
}

// UpdateActualAmount sets only actual_amount, leaving every other field as is.
func UpdateActualAmount(db *sql.DB, userID, id string, actualAmount float64) error {
	query := `UPDATE budgets
			  SET actual_amount = $1, updated_at = NOW()
			  WHERE id = $2 AND user_id = $3`

	result, err := db.Exec(query, actualAmount, id, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return database.ErrNotFound
	}
	return nil
}

func DeleteBudget(db *sql.DB, userID, id string) error {
	result, err := db.Exec(`DELETE FROM budgets WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return database.ErrNotFound
	}
	return nil
}
