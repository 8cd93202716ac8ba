package database

import (
	"context"
	"os"
	"testing"
	"time"
)

// getTestConfig returns a config for integration testing, overridable via env
func getTestConfig() *PostgresConfig {
	cfg := DefaultPostgresConfig()

	if host := os.Getenv("TEST_POSTGRES_HOST"); host != "" {
		cfg.Host = host
	}
	if user := os.Getenv("TEST_POSTGRES_USER"); user != "" {
		cfg.User = user
	}
	if password := os.Getenv("TEST_POSTGRES_PASSWORD"); password != "" {
		cfg.Password = password
	}
	if dbname := os.Getenv("TEST_POSTGRES_DATABASE"); dbname != "" {
		cfg.Database = dbname
	}

	return cfg
}

func skipIfNoIntegration(t *testing.T) {
	if os.Getenv("INTEGRATION_TEST") != "true" {
		t.Skip("Skipping integration test. Set INTEGRATION_TEST=true to run")
	}
}

func TestDefaultPostgresConfig(t *testing.T) {
	cfg := DefaultPostgresConfig()

	if cfg.Host != "localhost" {
		t.Errorf("Expected host 'localhost', got '%s'", cfg.Host)
	}
	if cfg.Port != 5432 {
		t.Errorf("Expected port 5432, got %d", cfg.Port)
	}
	if cfg.MaxConns != 25 {
		t.Errorf("Expected max conns 25, got %d", cfg.MaxConns)
	}
	if cfg.MinConns != 5 {
		t.Errorf("Expected min conns 5, got %d", cfg.MinConns)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("Expected max retries 3, got %d", cfg.MaxRetries)
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	cfg := &PostgresConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "testuser",
		Password: "testpass",
		Database: "testdb",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	if dsn != expected {
		t.Errorf("DSN mismatch:\nExpected: %s\nGot: %s", expected, dsn)
	}
}

func TestNewPostgres_InvalidConfig(t *testing.T) {
	cfg := &PostgresConfig{
		Host:           "invalid-host-that-does-not-exist",
		Port:           9999,
		User:           "invalid",
		Password:       "invalid",
		Database:       "invalid",
		SSLMode:        "disable",
		MaxRetries:     0,
		RetryInterval:  100 * time.Millisecond,
		ConnectTimeout: 1 * time.Second,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := NewPostgres(ctx, cfg)
	if err == nil {
		t.Error("Expected error for invalid config, got nil")
	}
}

func TestNewPostgres_Integration(t *testing.T) {
	skipIfNoIntegration(t)

	cfg := getTestConfig()
	ctx := context.Background()

	db, err := NewPostgres(ctx, cfg)
	if err != nil {
		t.Fatalf("Failed to connect to postgres: %v", err)
	}
	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		t.Errorf("Ping failed: %v", err)
	}
	if !db.IsConnected(ctx) {
		t.Error("Expected IsConnected to return true")
	}
	if db.Pool() == nil {
		t.Error("Expected Pool() to return non-nil")
	}
	if err := db.HealthCheck(ctx); err != nil {
		t.Errorf("HealthCheck failed: %v", err)
	}
	if db.Stats() == nil {
		t.Error("Expected Stats() to return non-nil")
	}
}

func TestPostgresDB_ExecAndQuery_Integration(t *testing.T) {
	skipIfNoIntegration(t)

	cfg := getTestConfig()
	ctx := context.Background()

	db, err := NewPostgres(ctx, cfg)
	if err != nil {
		t.Fatalf("Failed to connect to postgres: %v", err)
	}
	defer db.Close()

	if err := db.Exec(ctx, "CREATE TEMP TABLE exec_test (id SERIAL PRIMARY KEY, name TEXT)"); err != nil {
		t.Fatalf("Exec failed: %v", err)
	}
	if err := db.Exec(ctx, "INSERT INTO exec_test (name) VALUES ($1)", "test"); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	var name string
	if err := db.QueryRow(ctx, "SELECT name FROM exec_test WHERE name = $1", "test").Scan(&name); err != nil {
		t.Fatalf("QueryRow failed: %v", err)
	}
	if name != "test" {
		t.Errorf("Expected name 'test', got '%s'", name)
	}
}

func TestPostgresDB_Transaction_Integration(t *testing.T) {
	skipIfNoIntegration(t)

	cfg := getTestConfig()
	ctx := context.Background()

	db, err := NewPostgres(ctx, cfg)
	if err != nil {
		t.Fatalf("Failed to connect to postgres: %v", err)
	}
	defer db.Close()

	if err := db.Exec(ctx, "CREATE TEMP TABLE tx_test (id SERIAL PRIMARY KEY, value INT)"); err != nil {
		t.Fatalf("Failed to create temp table: %v", err)
	}

	tx, err := db.BeginTx(ctx)
	if err != nil {
		t.Fatalf("BeginTx failed: %v", err)
	}

	if _, err := tx.Exec(ctx, "INSERT INTO tx_test (value) VALUES ($1)", 100); err != nil {
		tx.Rollback(ctx)
		t.Fatalf("Insert in tx failed: %v", err)
	}
	if err := tx.Commit(ctx); err != nil {
		t.Errorf("Commit failed: %v", err)
	}

	var value int
	if err := db.QueryRow(ctx, "SELECT value FROM tx_test WHERE value = $1", 100).Scan(&value); err != nil {
		t.Errorf("Query after commit failed: %v", err)
	}
	if value != 100 {
		t.Errorf("Expected value 100, got %d", value)
	}
}
