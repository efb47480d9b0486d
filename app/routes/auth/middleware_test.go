package auth

import (
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(db *sql.DB) *fiber.App {
	app := fiber.New()
	app.Get("/protected", Protected(db), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userId": CurrentUserID(c)})
	})
	return app
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestProtectedNoToken(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	app := newProtectedApp(db)

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Not authorized, no token", decodeBody(t, resp)["message"])
}

func TestProtectedNonBearerHeader(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	app := newProtectedApp(db)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedInvalidToken(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	app := newProtectedApp(db)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage.token.value")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Not authorized, token failed", decodeBody(t, resp)["message"])
}

func TestProtectedUserNoLongerExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	userID := "9f4a2c9e-1b7d-4f7e-8a2b-0c1d2e3f4a5b"
	token, err := GenerateJWT(userID)
	require.NoError(t, err)

	mock.ExpectQuery("FROM users WHERE id").
		WithArgs(userID).
		WillReturnError(sql.ErrNoRows)

	app := newProtectedApp(db)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Not authorized, user no longer exists", decodeBody(t, resp)["message"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProtectedSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	userID := "9f4a2c9e-1b7d-4f7e-8a2b-0c1d2e3f4a5b"
	token, err := GenerateJWT(userID)
	require.NoError(t, err)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "name", "email", "password", "currency", "theme", "date_format", "created_at", "updated_at",
	}).AddRow(userID, "Test User", "test@example.com", "hash", "₹", "light", "DD-MM-YYYY", now, now)

	mock.ExpectQuery("FROM users WHERE id").
		WithArgs(userID).
		WillReturnRows(rows)

	app := newProtectedApp(db)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, userID, decodeBody(t, resp)["userId"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
