package expenses

import (
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "9f4a2c9e-1b7d-4f7e-8a2b-0c1d2e3f4a5b"

func newTestApp(db *sql.DB) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", testUserID)
		return c.Next()
	})
	app.Get("/api/expenses", GetExpensesAPI(db))
	app.Post("/api/expenses", CreateExpenseAPI(db))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func TestCreateExpenseInvalidPaymentMethod(t *testing.T) {
	app := newTestApp(nil)
	code, raw := doJSON(t, app, "POST", "/api/expenses",
		`{"description":"Groceries","amount":500,"paymentMethod":"Barter"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, string(raw), "Invalid payment method")
}

func TestCreateExpenseInvalidCategory(t *testing.T) {
	app := newTestApp(nil)
	code, raw := doJSON(t, app, "POST", "/api/expenses",
		`{"description":"Groceries","amount":500,"category":"Bribes"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, string(raw), "Invalid expense category")
}

func TestCreateExpenseDefaults(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO expenses").
		WithArgs(sqlmock.AnyArg(), "Groceries", 500.0, sqlmock.AnyArg(), "Other", "Other", "", testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	app := newTestApp(db)
	code, raw := doJSON(t, app, "POST", "/api/expenses",
		`{"description":"Groceries","amount":500}`)
	assert.Equal(t, http.StatusCreated, code)

	var expense map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &expense))
	assert.Equal(t, "Other", expense["category"])
	assert.Equal(t, "Other", expense["paymentMethod"])
	assert.Equal(t, testUserID, expense["userId"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetExpensesScopedToUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "description", "amount", "date", "category", "payment_method", "notes", "user_id", "created_at", "updated_at"}).
		AddRow("5a6b7c8d-9e0f-4a1b-8c2d-3e4f5a6b7c8d", "Rent", 15000.0, now, "Housing", "Bank Transfer", "", testUserID, now, now)

	mock.ExpectQuery("FROM expenses").
		WithArgs(testUserID).
		WillReturnRows(rows)

	app := newTestApp(db)
	code, raw := doJSON(t, app, "GET", "/api/expenses", "")
	assert.Equal(t, http.StatusOK, code)

	var expenses []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &expenses))
	require.Len(t, expenses, 1)
	assert.Equal(t, "Rent", expenses[0]["description"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
