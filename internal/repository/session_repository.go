package repository

import (
	"context"
	"time"
)

// SessionRepository defines the interface for server-side admin sessions.
// Logout revokes the session even while the JWT is still within its TTL.
type SessionRepository interface {
	// Create stores a session for a user with the given TTL
	Create(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	// Get returns the user ID for a session, or domain.ErrUserNotFound when
	// the session is unknown or expired
	Get(ctx context.Context, sessionID string) (string, error)
	// Delete revokes a session
	Delete(ctx context.Context, sessionID string) error
}
