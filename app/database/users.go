package database

import (
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/skanda13/Finance-Tracker/app/models"
)

const userColumns = `id, name, email, password, currency, theme, date_format, created_at, updated_at`

func scanUser(row *sql.Row) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.Password,
		&u.Settings.Currency, &u.Settings.Theme, &u.Settings.DateFormat,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetUserByEmail looks a user up by normalized (lowercased) email.
func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(db.QueryRow(query, NormalizeEmail(email)))
}

func GetUserByID(db *sql.DB, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(db.QueryRow(query, id))
}

// CreateUser inserts a new user. The email must already be normalized and the
// password already hashed. Returns ErrDuplicate when the email is taken.
func CreateUser(db *sql.DB, u *models.User) error {
	u.ID = uuid.NewString()
	query := `INSERT INTO users (id, name, email, password, currency, theme, date_format)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING created_at, updated_at`

	err := db.QueryRow(query,
		u.ID, u.Name, u.Email, u.Password,
		u.Settings.Currency, u.Settings.Theme, u.Settings.DateFormat,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
	if IsUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// UpdateUserProfile persists name and settings. Email and password are
// deliberately not part of this statement.
func UpdateUserProfile(db *sql.DB, u *models.User) error {
	query := `UPDATE users
			  SET name = $1, currency = $2, theme = $3, date_format = $4, updated_at = NOW()
			  WHERE id = $5`

	result, err := db.Exec(query,
		u.Name, u.Settings.Currency, u.Settings.Theme, u.Settings.DateFormat, u.ID,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// NormalizeEmail trims and lowercases an address so lookups and the unique
// constraint are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
