package incomes

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

const (
	testUserID   = "9f4a2c9e-1b7d-4f7e-8a2b-0c1d2e3f4a5b"
	testIncomeID = "1a2b3c4d-5e6f-4a8b-9c0d-1e2f3a4b5c6d"
)

// newTestApp wires the handlers behind a stub of the auth middleware so the
// tests exercise the income logic in isolation.
func newTestApp(db *sql.DB) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", testUserID)
		return c.Next()
	})
	app.Get("/api/incomes", GetIncomesAPI(db))
	app.Get("/api/incomes/:id", GetIncomeAPI(db))
	app.Post("/api/incomes", CreateIncomeAPI(db))
	app.Put("/api/incomes/:id", UpdateIncomeAPI(db))
	app.Delete("/api/incomes/:id", DeleteIncomeAPI(db))
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

func incomeColumns() []string {
	return []string{"id", "source", "amount", "date", "category", "notes", "user_id", "created_at", "updated_at"}
}

func TestGetIncomesEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM incomes").
		WithArgs(testUserID).
		WillReturnRows(sqlmock.NewRows(incomeColumns()))

	app := newTestApp(db)
	code, raw := doJSON(t, app, "GET", "/api/incomes", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "[]", strings.TrimSpace(string(raw)), "empty collection must serialize as an array")
}

func TestGetIncomesScopedToUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(incomeColumns()).
		AddRow(testIncomeID, "Salary", 50000.0, now, "Employment", "Monthly salary", testUserID, now, now)

	mock.ExpectQuery("FROM incomes").
		WithArgs(testUserID).
		WillReturnRows(rows)

	app := newTestApp(db)
	code, raw := doJSON(t, app, "GET", "/api/incomes", "")
	assert.Equal(t, http.StatusOK, code)

	var incomes []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &incomes))
	require.Len(t, incomes, 1)
	assert.Equal(t, "Salary", incomes[0]["source"])
	assert.Equal(t, 50000.0, incomes[0]["amount"])
	assert.Equal(t, "Employment", incomes[0]["category"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetIncomeInvalidID(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	app := newTestApp(db)
	code, raw := doJSON(t, app, "GET", "/api/incomes/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, string(raw), "Invalid income ID")
}

func TestGetIncomeNotOwnedIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// The ownership-scoped lookup returns no row whether the record is
	// missing or belongs to someone else; both must look identical.
	mock.ExpectQuery("FROM incomes").
		WithArgs(testIncomeID, testUserID).
		WillReturnError(sql.ErrNoRows)

	app := newTestApp(db)
	code, raw := doJSON(t, app, "GET", "/api/incomes/"+testIncomeID, "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, string(raw), "Income not found")
}

func TestCreateIncomeMissingFields(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	app := newTestApp(db)

	code, raw := doJSON(t, app, "POST", "/api/incomes", `{"amount":100}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, string(raw), "Income source is required")

	code, raw = doJSON(t, app, "POST", "/api/incomes", `{"source":"Salary"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, string(raw), "Amount is required")
}

func TestCreateIncomeNegativeAmount(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	app := newTestApp(db)
	code, raw := doJSON(t, app, "POST", "/api/incomes", `{"source":"Salary","amount":-1}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, string(raw), "Amount cannot be negative")
}

func TestCreateIncomeInvalidCategory(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	app := newTestApp(db)
	code, raw := doJSON(t, app, "POST", "/api/incomes", `{"source":"Salary","amount":100,"category":"Lottery"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, string(raw), "Invalid income category")
}

func TestCreateIncomeAppliesDefaults(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	// Category defaults to Other, the date to now; the owner id comes from
	// the request context, never from the payload.
	mock.ExpectQuery("INSERT INTO incomes").
		WithArgs(sqlmock.AnyArg(), "Salary", 50000.0, sqlmock.AnyArg(), "Other", "", testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	app := newTestApp(db)
	code, raw := doJSON(t, app, "POST", "/api/incomes",
		`{"source":"Salary","amount":50000,"userId":"attacker-supplied-id"}`)
	assert.Equal(t, http.StatusCreated, code)

	var income map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &income))
	assert.Equal(t, "Other", income["category"])
	assert.Equal(t, testUserID, income["userId"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateIncomePartialMerge(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	existing := sqlmock.NewRows(incomeColumns()).
		AddRow(testIncomeID, "Salary", 50000.0, now, "Employment", "Monthly salary", testUserID, now, now)

	mock.ExpectQuery("FROM incomes").
		WithArgs(testIncomeID, testUserID).
		WillReturnRows(existing)

	// Only notes was sent, as an explicit empty string. It must be wiped
	// while every omitted field keeps its stored value.
	mock.ExpectExec("UPDATE incomes").
		WithArgs("Salary", 50000.0, sqlmock.AnyArg(), "Employment", "", testIncomeID, testUserID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	app := newTestApp(db)
	code, raw := doJSON(t, app, "PUT", "/api/incomes/"+testIncomeID, `{"notes":""}`)
	assert.Equal(t, http.StatusOK, code)

	var income map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &income))
	assert.Equal(t, "Salary", income["source"])
	assert.Equal(t, "", income["notes"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteIncomeIdempotentNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM incomes").
		WithArgs(testIncomeID, testUserID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM incomes").
		WithArgs(testIncomeID, testUserID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	app := newTestApp(db)
	for i := 0; i < 2; i++ {
		code, raw := doJSON(t, app, "DELETE", "/api/incomes/"+testIncomeID, "")
		assert.Equal(t, http.StatusNotFound, code)
		assert.Contains(t, string(raw), "Income not found")
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteIncomeSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM incomes").
		WithArgs(testIncomeID, testUserID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	app := newTestApp(db)
	code, raw := doJSON(t, app, "DELETE", "/api/incomes/"+testIncomeID, "")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(raw), "Income removed")
}
