package repository

import (
	"context"

	"github.com/eznproject/undangan/internal/domain"
)

// UserRepository defines the interface for admin user persistence
type UserRepository interface {
	// Create inserts a new admin user. Returns domain.ErrUsernameExists when
	// the username is taken.
	Create(ctx context.Context, user *domain.User) error
	// GetByID retrieves a user by ID. Returns domain.ErrUserNotFound if absent.
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// GetByUsername retrieves a user by username. Returns domain.ErrUserNotFound if absent.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
