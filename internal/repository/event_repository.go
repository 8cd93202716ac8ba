package repository

import (
	"context"

	"github.com/eznproject/undangan/internal/domain"
)

// EventRepository defines the interface for event catalog persistence
type EventRepository interface {
	// Create inserts a new event
	Create(ctx context.Context, event *domain.Event) error
	// GetByID retrieves an event by ID. Returns domain.ErrEventNotFound if absent.
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	// List retrieves all events, newest first
	List(ctx context.Context) ([]*domain.Event, error)
	// Delete removes an event. Invitations and their attendance rows cascade
	// away; guests are untouched. Returns domain.ErrEventNotFound if absent.
	Delete(ctx context.Context, id string) error
}
