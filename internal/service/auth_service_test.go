package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/eznproject/undangan/internal/dto"
)

func newTestAuthService(store *MockStore) AuthService {
	return NewAuthService(store.Users(), store.Sessions(), &AuthServiceConfig{
		JWTSecret:      "test-secret",
		AccessTokenTTL: time.Hour,
		SessionTTL:     time.Hour,
		Issuer:         "undangan-test",
	})
}

func TestAuthService_Login(t *testing.T) {
	store := NewMockStore()
	authSvc := newTestAuthService(store)
	ctx := context.Background()

	if err := authSvc.SeedAdmin(ctx, "admin", "secret123"); err != nil {
		t.Fatalf("Failed to seed admin: %v", err)
	}

	resp, err := authSvc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "secret123"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if resp.AccessToken == "" {
		t.Error("Expected an access token")
	}
	if resp.User.Username != "admin" {
		t.Errorf("Expected username admin, got %s", resp.User.Username)
	}

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(resp.AccessToken, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("Failed to parse issued token: %v", err)
	}
	sessionID, _ := claims["session_id"].(string)
	if sessionID == "" {
		t.Fatal("Expected a session_id claim")
	}
	if err := authSvc.ValidateSession(ctx, sessionID); err != nil {
		t.Errorf("Expected live session, got %v", err)
	}
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	store := NewMockStore()
	authSvc := newTestAuthService(store)
	ctx := context.Background()

	if err := authSvc.SeedAdmin(ctx, "admin", "secret123"); err != nil {
		t.Fatalf("Failed to seed admin: %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "wrong-password"},
		{"unknown user", "nobody", "secret123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := authSvc.Login(ctx, &dto.LoginRequest{Username: tt.username, Password: tt.password})
			if !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("Expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestAuthService_Logout_RevokesSession(t *testing.T) {
	store := NewMockStore()
	authSvc := newTestAuthService(store)
	ctx := context.Background()

	if err := authSvc.SeedAdmin(ctx, "admin", "secret123"); err != nil {
		t.Fatalf("Failed to seed admin: %v", err)
	}
	resp, err := authSvc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "secret123"})
	if err != nil {
		t.Fatalf("Failed to log in: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(resp.AccessToken, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}); err != nil {
		t.Fatalf("Failed to parse issued token: %v", err)
	}
	sessionID := claims["session_id"].(string)

	if err := authSvc.Logout(ctx, sessionID); err != nil {
		t.Fatalf("Failed to log out: %v", err)
	}
	if err := authSvc.ValidateSession(ctx, sessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound after logout, got %v", err)
	}
}

func TestAuthService_Me(t *testing.T) {
	store := NewMockStore()
	authSvc := newTestAuthService(store)
	ctx := context.Background()

	if err := authSvc.SeedAdmin(ctx, "admin", "secret123"); err != nil {
		t.Fatalf("Failed to seed admin: %v", err)
	}
	resp, err := authSvc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "secret123"})
	if err != nil {
		t.Fatalf("Failed to log in: %v", err)
	}

	user, err := authSvc.Me(ctx, resp.User.ID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if user.Username != "admin" {
		t.Errorf("Expected username admin, got %s", user.Username)
	}
}

func TestAuthService_SeedAdmin_Idempotent(t *testing.T) {
	store := NewMockStore()
	authSvc := newTestAuthService(store)
	ctx := context.Background()

	if err := authSvc.SeedAdmin(ctx, "admin", "secret123"); err != nil {
		t.Fatalf("Failed to seed admin: %v", err)
	}
	// Second seed is a no-op, even with a different password.
	if err := authSvc.SeedAdmin(ctx, "admin", "other-password"); err != nil {
		t.Fatalf("Expected second seed to succeed, got %v", err)
	}

	if _, err := authSvc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "secret123"}); err != nil {
		t.Errorf("Expected original password to stay valid, got %v", err)
	}
}
