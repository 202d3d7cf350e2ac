package repository

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/felixbank/bank-back/internal/config"
	"github.com/felixbank/bank-back/internal/db"
	"github.com/felixbank/bank-back/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// testToday is the fixed reference date injected into date-due queries.
var testToday = time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *db.DB {
	t.Helper()

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	logger := cfg.Logger.NewLogger()

	database, err := db.Connect(context.Background(), &cfg.Database, logger)
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}

	runMigrations(t, database)
	truncateTables(t, database)

	return database
}

func runMigrations(t *testing.T, database *db.DB) {
	t.Helper()

	migrationPath := filepath.Join("..", "..", "internal", "db", "migrations", "000001_init.up.sql")
	sqlBytes, err := os.ReadFile(migrationPath) // #nosec G304
	if err != nil {
		t.Fatalf("failed to read migration file: %v", err)
	}

	if _, err := database.ExecContext(context.Background(), string(sqlBytes)); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
}

func cleanupTestDB(t *testing.T, database *db.DB) {
	t.Helper()
	if err := database.Close(); err != nil {
		log.Printf("failed to close test database: %v", err)
	}
}

func truncateTables(t *testing.T, database *db.DB) {
	t.Helper()

	// account_holders cascades into accounts.
	tables := []string{"idempotency_keys", "account_holders"}
	for _, table := range tables {
		_, err := database.ExecContext(context.Background(), "TRUNCATE TABLE "+table+" CASCADE")
		if err != nil {
			t.Fatalf("failed to truncate table %s: %v", table, err)
		}
	}
}

func seedHolder(t *testing.T, database *db.DB, name string, dateOfBirth time.Time) *models.AccountHolder {
	t.Helper()

	holder, err := models.NewAccountHolder(
		name,
		dateOfBirth,
		models.PersonalData{
			FirstName:   "Test",
			LastName:    "Holder",
			PhoneNumber: "+1-555-0100",
			Email:       "holder@example.com",
		},
		models.Address{
			Street:     "12 Harbor Lane",
			City:       "Portland",
			PostalCode: "97201",
			Country:    "US",
		},
		nil,
		testToday,
	)
	require.NoError(t, err, "failed to build holder")

	require.NoError(t, NewHolderRepository(database).Create(context.Background(), holder),
		"failed to seed holder")
	return holder
}

func seedAdultHolder(t *testing.T, database *db.DB) *models.AccountHolder {
	t.Helper()
	return seedHolder(t, database, "Maya Torres", testToday.AddDate(-30, 0, 0))
}

func usd(t *testing.T, amount string) models.Money {
	t.Helper()

	value, err := decimal.NewFromString(amount)
	require.NoError(t, err, "invalid decimal literal %q", amount)

	money, err := models.NewMoney(value, models.DefaultCurrency)
	require.NoError(t, err, "invalid money value %q", amount)
	return money
}
