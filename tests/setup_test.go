//nolint:errcheck // unchecked errors are acceptable in test files
package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/felixbank/bank-back/internal/clock"
	"github.com/felixbank/bank-back/internal/config"
	"github.com/felixbank/bank-back/internal/db"
	"github.com/felixbank/bank-back/internal/handlers"
	"github.com/stretchr/testify/require"
)

// TestServer wraps the HTTP test server and database for integration tests.
type TestServer struct {
	Server   *httptest.Server
	Database *db.DB
	t        *testing.T
}

// SetupTest creates a new test server with a clean database state.
func SetupTest(t *testing.T) *TestServer {
	t.Helper()

	cfg, err := config.Load()
	require.NoError(t, err, "failed to load config")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	database, err := db.Connect(context.Background(), &cfg.Database, logger)
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}

	runMigrations(t, database)
	resetTestData(t, database)

	router := handlers.NewRouter(database, cfg, clock.System{}, logger)
	server := httptest.NewServer(router)

	return &TestServer{
		Server:   server,
		Database: database,
		t:        t,
	}
}

// Close shuts down the test server and database connection.
func (ts *TestServer) Close() {
	ts.Server.Close()
	_ = ts.Database.Close()
}

// URL returns the full URL for a given path.
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}

func runMigrations(t *testing.T, database *db.DB) {
	t.Helper()

	migrationPath := filepath.Join("..", "internal", "db", "migrations", "000001_init.up.sql")
	sqlBytes, err := os.ReadFile(migrationPath) // #nosec G304
	require.NoError(t, err, "failed to read migration file")

	_, err = database.ExecContext(context.Background(), string(sqlBytes))
	require.NoError(t, err, "failed to run migrations")
}

func resetTestData(t *testing.T, database *db.DB) {
	t.Helper()

	_, err := database.ExecContext(context.Background(), `
		TRUNCATE TABLE idempotency_keys CASCADE;
		TRUNCATE TABLE account_holders CASCADE;
	`)
	require.NoError(t, err, "failed to reset test data")
}

func (ts *TestServer) postJSON(t *testing.T, path string, body any, idempotencyKey string) *http.Response {
	t.Helper()

	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, ts.URL(path), bytes.NewReader(jsonBody))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func jsonReader(t *testing.T, body any) *bytes.Reader {
	t.Helper()

	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)
	return bytes.NewReader(jsonBody)
}

func decodeJSON(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	return body
}

// CreateHolder registers an account holder and returns its id.
func (ts *TestServer) CreateHolder(t *testing.T, name string, dateOfBirth time.Time) string {
	t.Helper()

	resp := ts.postJSON(t, "/api/v1/holders", map[string]any{
		"name":          name,
		"date_of_birth": dateOfBirth.Format("2006-01-02"),
		"personal_data": map[string]any{
			"first_name":   "Test",
			"last_name":    "Holder",
			"phone_number": "+1-555-0100",
			"email":        "holder@example.com",
		},
		"primary_address": map[string]any{
			"street":      "12 Harbor Lane",
			"city":        "Portland",
			"postal_code": "97201",
			"country":     "US",
		},
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode, "failed to create holder")

	body := decodeJSON(t, resp)
	return body["id"].(string)
}

// OpenAccount opens an account of the given variant and returns the response.
func (ts *TestServer) OpenAccount(t *testing.T, variant, ownerID, balance, secretKey string, extra map[string]any) *http.Response {
	t.Helper()

	body := map[string]any{
		"balance":          map[string]any{"amount": balance, "currency": "USD"},
		"secret_key":       secretKey,
		"primary_owner_id": ownerID,
	}
	for k, v := range extra {
		body[k] = v
	}
	return ts.postJSON(t, "/api/v1/accounts/"+variant, body, "")
}

// Deposit sends a POST request to credit an account.
func (ts *TestServer) Deposit(t *testing.T, accountID, amount, idempotencyKey string) *http.Response {
	t.Helper()
	return ts.postJSON(t, "/api/v1/accounts/"+accountID+"/deposits", map[string]any{
		"amount": map[string]any{"amount": amount, "currency": "USD"},
	}, idempotencyKey)
}

// Withdraw sends a POST request to debit an account.
func (ts *TestServer) Withdraw(t *testing.T, accountID, amount, idempotencyKey string) *http.Response {
	t.Helper()
	return ts.postJSON(t, "/api/v1/accounts/"+accountID+"/withdrawals", map[string]any{
		"amount": map[string]any{"amount": amount, "currency": "USD"},
	}, idempotencyKey)
}

// Transfer sends a POST request to move money between two accounts.
func (ts *TestServer) Transfer(t *testing.T, fromID, toID, amount, idempotencyKey string) *http.Response {
	t.Helper()
	return ts.postJSON(t, "/api/v1/transfers", map[string]any{
		"from_account_id": fromID,
		"to_account_id":   toID,
		"amount":          map[string]any{"amount": amount, "currency": "USD"},
	}, idempotencyKey)
}

// RunSweep triggers the named batch evaluation.
func (ts *TestServer) RunSweep(t *testing.T, name string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, ts.URL("/api/v1/sweeps/"+name), nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

// GetAccount fetches an account by id.
func (ts *TestServer) GetAccount(t *testing.T, accountID string) *http.Response {
	t.Helper()

	resp, err := http.Get(ts.URL("/api/v1/accounts/" + accountID))
	require.NoError(t, err)
	return resp
}

func balanceAmount(t *testing.T, body map[string]any) string {
	t.Helper()

	balance, ok := body["balance"].(map[string]any)
	require.True(t, ok, "response has no balance object: %v", body)
	return balance["amount"].(string)
}
