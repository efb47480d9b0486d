package investments

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
	app.Post("/api/investments", CreateInvestmentAPI(db))
	return app
}

func postJSON(t *testing.T, app *fiber.App, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/investments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func TestCreateInvestmentDateRequired(t *testing.T) {
	app := newTestApp(nil)
	code, raw := postJSON(t, app,
		`{"name":"Index Fund","amount":25000,"returns":"12%"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, string(raw), "Date is required")
}

func TestCreateInvestmentReturnsRequired(t *testing.T) {
	app := newTestApp(nil)
	code, raw := postJSON(t, app,
		`{"name":"Index Fund","amount":25000,"date":"2023-06-15"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, string(raw), "Return rate is required")
}

func TestCreateInvestmentTypeDefaultsToEquity(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO investments").
		WithArgs(sqlmock.AnyArg(), "Index Fund", 25000.0, sqlmock.AnyArg(), "Equity", "12%", "", testUserID).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	app := newTestApp(db)
	code, raw := postJSON(t, app,
		`{"name":"Index Fund","amount":25000,"date":"2023-06-15","returns":"12%"}`)
	assert.Equal(t, http.StatusCreated, code)

	var investment map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &investment))
	assert.Equal(t, "Equity", investment["type"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
