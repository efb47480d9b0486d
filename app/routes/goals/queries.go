package goals

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/skanda13/Finance-Tracker/app/database"
	"github.com/skanda13/Finance-Tracker/app/models"
)

// Goals sort by creation time, newest first, rather than by a domain date.

func GetAllGoals(db *sql.DB, userID string) ([]*models.FinancialGoal, error) {
	query := `SELECT id, name, target_amount, current_amount, deadline, notes, user_id, created_at, updated_at
			  FROM financial_goals
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := []*models.FinancialGoal{} // Initialize to empty slice for non-null JSON
	for rows.Next() {
		g := &models.FinancialGoal{}
		err := rows.Scan(
			&g.ID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.Deadline,
			&g.Notes, &g.UserID, &g.CreatedAt, &g.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func GetGoalByID(db *sql.DB, userID, id string) (*models.FinancialGoal, error) {
	query := `SELECT id, name, target_amount, current_amount, deadline, notes, user_id, created_at, updated_at
			  FROM financial_goals
			  WHERE id = $1 AND user_id = $2`

	g := &models.FinancialGoal{}
	err := db.QueryRow(query, id, userID).Scan(
		&g.ID, &g.Name, &g.TargetAmount, &g.CurrentAmount, &g.Deadline,
		&g.Notes, &g.UserID, &g.CreatedAt, &g.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

func CreateGoal(db *sql.DB, g *models.FinancialGoal) error {
	g.ID = uuid.NewString()
	query := `INSERT INTO financial_goals (id, name, target_amount, current_amount, deadline, notes, user_id)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING created_at, updated_at`

	return db.QueryRow(query, g.ID, g.Name, g.TargetAmount, g.CurrentAmount, g.Deadline, g.Notes, g.UserID).
		Scan(&g.CreatedAt, &g.UpdatedAt)
}

func UpdateGoal(db *sql.DB, g *models.FinancialGoal) error {
	query := `UPDATE financial_goals
			  SET name = $1, target_amount = $2, current_amount = $3, deadline = $4, notes = $5, updated_at = NOW()
			  WHERE id = $6 AND user_id = $7`

	result, err := db.Exec(query, g.Name, g.TargetAmount, g.CurrentAmount, g.Deadline, g.Notes, g.ID, g.UserID)
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

func DeleteGoal(db *sql.DB, userID, id string) error {
	result, err := db.Exec(`DELETE FROM financial_goals WHERE id = $1 AND user_id = $2`, id, userID)
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
