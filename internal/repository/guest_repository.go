package repository

import (
	"context"

	"github.com/eznproject/undangan/internal/domain"
)

// GuestRepository defines the interface for guest directory persistence
type GuestRepository interface {
	// Create inserts a new guest. Returns domain.ErrGuestContactExists when
	// another guest already holds the whatsapp number; the caller re-reads
	// the winning row.
	Create(ctx context.Context, guest *domain.Guest) error
	// GetByID retrieves a guest by ID. Returns domain.ErrGuestNotFound if absent.
	GetByID(ctx context.Context, id string) (*domain.Guest, error)
	// GetByWhatsapp retrieves a guest by exact whatsapp number.
	// Returns domain.ErrGuestNotFound if absent.
	GetByWhatsapp(ctx context.Context, whatsapp string) (*domain.Guest, error)
	// Update persists changed guest fields
	Update(ctx context.Context, guest *domain.Guest) error
	// Find lists guests, newest first. excludeEventID, when set, removes
	// guests already invited to that event; search, when set, is a
	// case-insensitive substring match over name, whatsapp, and area.
	Find(ctx context.Context, excludeEventID, search string) ([]*domain.Guest, error)
}
