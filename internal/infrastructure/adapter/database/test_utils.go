package database

import (
	"context"
	"os"
	"testing"
	"time"

	coreport "github.com/mensunw/people-bets/internal/domain/port/core"
	timeprovider "github.com/mensunw/people-bets/internal/infrastructure/adapter/time"
)

// TestDBHostEnv names the variable that enables postgres integration tests
const TestDBHostEnv = "PB_TEST_DB_HOST"

// TestDBManager provides utilities for testing with a database
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager connects to the test database and migrates a clean schema.
// The test is skipped when PB_TEST_DB_HOST is not set.
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	host := os.Getenv(TestDBHostEnv)
	if host == "" {
		t.Skipf("%s not set, skipping postgres integration test", TestDBHostEnv)
	}

	tp := timeprovider.NewRealTimeProvider()
	config := &Config{
		Driver:          DriverPostgres,
		Host:            host,
		Port:            configEnvAsInt("PB_TEST_DB_PORT", 5432),
		Username:        configEnvOrDefault("PB_TEST_DB_USERNAME", "postgres"),
		Password:        configEnvOrDefault("PB_TEST_DB_PASSWORD", "postgres"),
		Database:        configEnvOrDefault("PB_TEST_DB_NAME", "people_bets_test"),
		SSLMode:         "disable",
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "silent",
		RetryAttempts:   1,
		RetryDelay:      time.Second,
	}

	m := &TestDBManager{
		Manager:      NewManager(config, logger, tp, nil),
		Config:       config,
		Logger:       logger,
		TimeProvider: tp,
	}

	ctx := context.Background()
	if _, err := m.Manager.Connect(ctx); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := m.Manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	m.DropAllTables(t)
	if err := m.Manager.Migrate(ctx); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return m
}

// DropAllTables drops every table in the current schema
func (m *TestDBManager) DropAllTables(t *testing.T) {
	t.Helper()

	if err := m.Manager.DB().Exec(`
		DO $$ DECLARE
			r RECORD;
		BEGIN
			FOR r IN (SELECT tablename FROM pg_tables WHERE schemaname = current_schema()) LOOP
				EXECUTE 'DROP TABLE IF EXISTS ' || quote_ident(r.tablename) || ' CASCADE';
			END LOOP;
		END $$;
	`).Error; err != nil {
		t.Fatalf("Failed to drop tables: %v", err)
	}
}
