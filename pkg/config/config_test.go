package config

import (
	"os"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	envVars := []string{
		"APP_NAME", "APP_ENVIRONMENT", "APP_DEBUG",
		"SERVER_HOST", "SERVER_PORT",
		"DATABASE_HOST", "DATABASE_PORT", "DATABASE_USER", "DATABASE_PASSWORD", "DATABASE_DBNAME",
		"REDIS_HOST", "REDIS_PORT",
		"AUTH_JWT_SECRET", "AUTH_ADMIN_USERNAME",
		"INVITATION_BASE_URL",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.App.Name != "undangan" {
		t.Errorf("App.Name = %q, want %q", cfg.App.Name, "undangan")
	}
	if cfg.App.Environment != "development" {
		t.Errorf("App.Environment = %q, want %q", cfg.App.Environment, "development")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("Database.Port = %d, want %d", cfg.Database.Port, 5432)
	}
	if cfg.Redis.Port != 6379 {
		t.Errorf("Redis.Port = %d, want %d", cfg.Redis.Port, 6379)
	}
	if cfg.Invitation.BaseURL != "http://localhost:3000" {
		t.Errorf("Invitation.BaseURL = %q, want default", cfg.Invitation.BaseURL)
	}
	if cfg.Auth.AdminUsername != "admin" {
		t.Errorf("Auth.AdminUsername = %q, want %q", cfg.Auth.AdminUsername, "admin")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	clearEnv(t)
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("DATABASE_DBNAME", "undangan_test")
	os.Setenv("INVITATION_BASE_URL", "https://undangan.example.com")
	defer clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Database.DBName != "undangan_test" {
		t.Errorf("Database.DBName = %q, want %q", cfg.Database.DBName, "undangan_test")
	}
	if cfg.Invitation.BaseURL != "https://undangan.example.com" {
		t.Errorf("Invitation.BaseURL = %q, want override", cfg.Invitation.BaseURL)
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := &DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "testuser",
		Password: "testpass",
		DBName:   "testdb",
		SSLMode:  "disable",
	}

	dsn := d.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	if dsn != expected {
		t.Errorf("DSN mismatch:\nExpected: %s\nGot: %s", expected, dsn)
	}
}

func TestRedisConfig_Addr(t *testing.T) {
	r := &RedisConfig{Host: "redis", Port: 6380}
	if r.Addr() != "redis:6380" {
		t.Errorf("Addr() = %q, want %q", r.Addr(), "redis:6380")
	}
}

func TestValidate_ProductionSecret(t *testing.T) {
	clearEnv(t)
	os.Setenv("APP_ENVIRONMENT", "production")
	defer clearEnv(t)

	_, err := Load()
	if err == nil {
		t.Error("Expected error for default JWT secret in production, got nil")
	}
}
