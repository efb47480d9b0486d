package investments

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/skanda13/Finance-Tracker/app/database"
	"github.com/skanda13/Finance-Tracker/app/models"
)

func GetAllInvestments(db *sql.DB, userID string) ([]*models.Investment, error) {
	query := `SELECT id, name, amount, date, type, returns, notes, user_id, created_at, updated_at
			  FROM investments
			  WHERE user_id = $1
			  ORDER BY date DESC`

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	investments := []*models.Investment{} // Initialize to empty slice for non-null JSON
	for rows.Next() {
		inv := &models.Investment{}
		err := rows.Scan(
			&inv.ID, &inv.Name, &inv.Amount, &inv.Date, &inv.Type,
			&inv.Returns, &inv.Notes, &inv.UserID, &inv.CreatedAt, &inv.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		investments = append(investments, inv)
	}
	return investments, rows.Err()
}

func GetInvestmentByID(db *sql.DB, userID, id string) (*models.Investment, error) {
	query := `SELECT id, name, amount, date, type, returns, notes, user_id, created_at, updated_at
			  FROM investments
			  WHERE id = $1 AND user_id = $2`

	inv := &models.Investment{}
	err := db.QueryRow(query, id, userID).Scan(
		&inv.ID, &inv.Name, &inv.Amount, &inv.Date, &inv.Type,
		&inv.Returns, &inv.Notes, &inv.UserID, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func CreateInvestment(db *sql.DB, inv *models.Investment) error {
	inv.ID = uuid.NewString()
	query := `INSERT INTO investments (id, name, amount, date, type, returns, notes, user_id)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING created_at, updated_at`

	return db.QueryRow(query, inv.ID, inv.Name, inv.Amount, inv.Date, inv.Type, inv.Returns, inv.Notes, inv.UserID).
		Scan(&inv.CreatedAt, &inv.UpdatedAt)
}

func UpdateInvestment(db *sql.DB, inv *models.Investment) error {
	query := `UPDATE investments
			  SET name = $1, amount = $2, date = $3, type = $4, returns = $5, notes = $6, updated_at = NOW()
			  WHERE id = $7 AND user_id = $8`

	result, err := db.Exec(query, inv.Name, inv.Amount, inv.Date, inv.Type, inv.Returns, inv.Notes, inv.ID, inv.UserID)
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

func DeleteInvestment(db *sql.DB, userID, id string) error {
	result, err := db.Exec(`DELETE FROM investments WHERE id = $1 AND user_id = $2`, id, userID)
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
