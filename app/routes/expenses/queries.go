package expenses

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/skanda13/Finance-Tracker/app/database"
	"github.com/skanda13/Finance-Tracker/app/models"
)

func GetAllExpenses(db *sql.DB, userID string) ([]*models.Expense, error) {
	query := `SELECT id, description, amount, date, category, payment_method, notes, user_id, created_at, updated_at
			  FROM expenses
			  WHERE user_id = $1
			  ORDER BY date DESC`

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []*models.Expense{} // Initialize to empty slice for non-null JSON
	for rows.Next() {
		e := &models.Expense{}
		err := rows.Scan(
			&e.ID, &e.Description, &e.Amount, &e.Date, &e.Category,
			&e.PaymentMethod, &e.Notes, &e.UserID, &e.CreatedAt, &e.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func GetExpenseByID(db *sql.DB, userID, id string) (*models.Expense, error) {
	query := `SELECT id, description, amount, date, category, payment_method, notes, user_id, created_at, updated_at
			  FROM expenses
			  WHERE id = $1 AND user_id = $2`

	e := &models.Expense{}
	err := db.QueryRow(query, id, userID).Scan(
		&e.ID, &e.Description, &e.Amount, &e.Date, &e.Category,
		&e.PaymentMethod, &e.Notes, &e.UserID, &e.CreatedAt, &e.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func CreateExpense(db *sql.DB, e *models.Expense) error {
	e.ID = uuid.NewString()
	query := `INSERT INTO expenses (id, description, amount, date, category, payment_method, notes, user_id)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING created_at, updated_at`

	return db.QueryRow(query, e.ID, e.Description, e.Amount, e.Date, e.Category, e.PaymentMethod, e.Notes, e.UserID).
		Scan(&e.CreatedAt, &e.UpdatedAt)
}

func UpdateExpense(db *sql.DB, e *models.Expense) error {
	query := `UPDATE expenses
			  SET description = $1, amount = $2, date = $3, category = $4, payment_method = $5, notes = $6, updated_at = NOW()
			  WHERE id = $7 AND user_id = $8`

	result, err := db.Exec(query, e.Description, e.Amount, e.Date, e.Category, e.PaymentMethod, e.Notes, e.ID, e.UserID)
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

func DeleteExpense(db *sql.DB, userID, id string) error {
	result, err := db.Exec(`DELETE FROM expenses WHERE id = $1 AND user_id = $2`, id, userID)
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
