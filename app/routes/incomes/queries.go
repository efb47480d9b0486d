package incomes

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/skanda13/Finance-Tracker/app/database"
	"github.com/skanda13/Finance-Tracker/app/models"
)

// Every query is scoped by user_id so one user's records are invisible to
// everyone else.

func GetAllIncomes(db *sql.DB, userID string) ([]*models.Income, error) {
	query := `SELECT id, source, amount, date, category, notes, user_id, created_at, updated_at
			  FROM incomes
			  WHERE user_id = $1
			  ORDER BY date DESC`

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	incomes := []*models.Income{} // Initialize to empty slice for non-null JSON
	for rows.Next() {
		in := &models.Income{}
		err := rows.Scan(
			&in.ID, &in.Source, &in.Amount, &in.Date, &in.Category,
			&in.Notes, &in.UserID, &in.CreatedAt, &in.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		incomes = append(incomes, in)
	}
	return incomes, rows.Err()
}

func GetIncomeByID(db *sql.DB, userID, id string) (*models.Income, error) {
	query := `SELECT id, source, amount, date, category, notes, user_id, created_at, updated_at
			  FROM incomes
			  WHERE id = $1 AND user_id = $2`

	in := &models.Income{}
	err := db.QueryRow(query, id, userID).Scan(
		&in.ID, &in.Source, &in.Amount, &in.Date, &in.Category,
		&in.Notes, &in.UserID, &in.CreatedAt, &in.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return in, nil
}

func CreateIncome(db *sql.DB, in *models.Income) error {
	in.ID = uuid.NewString()
	query := `INSERT INTO incomes (id, source, amount, date, category, notes, user_id)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING created_at, updated_at`

	return db.QueryRow(query, in.ID, in.Source, in.Amount, in.Date, in.Category, in.Notes, in.UserID).
		Scan(&in.CreatedAt, &in.UpdatedAt)
}

func UpdateIncome(db *sql.DB, in *models.Income) error {
	query := `UPDATE incomes
			  SET source = $1, amount = $2, date = $3, category = $4, notes = $5, updated_at = NOW()
			  WHERE id = $6 AND user_id = $7`

	result, err := db.Exec(query, in.Source, in.Amount, in.Date, in.Category, in.Notes, in.ID, in.UserID)
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

func DeleteIncome(db *sql.DB, userID, id string) error {
	result, err := db.Exec(`DELETE FROM incomes WHERE id = $1 AND user_id = $2`, id, userID)
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
