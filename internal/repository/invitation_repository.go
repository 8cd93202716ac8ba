package repository

import (
	"context"

	"github.com/eznproject/undangan/internal/domain"
)

// InvitationRecord is an invitation with its joined guest, event, and
// attendance rows, as the view endpoints need them.
type InvitationRecord struct {
	Invitation *domain.Invitation
	Guest      *domain.Guest
	Event      *domain.Event
	Attendance *domain.Attendance
}

// InvitationRepository defines the interface for the invitation ledger
type InvitationRepository interface {
	// Create inserts a new invitation. The storage unique constraints are the
	// sole duplicate guard: returns domain.ErrDuplicateInvitation when the
	// (event_id, guest_id) pair exists and domain.ErrTokenConflict when the
	// generated token collides.
	Create(ctx context.Context, invitation *domain.Invitation) error
	// GetByID retrieves a bare invitation by ID.
	// Returns domain.ErrInvitationNotFound if absent.
	GetByID(ctx context.Context, id string) (*domain.Invitation, error)
	// GetByToken retrieves a bare invitation by token.
	// Returns domain.ErrInvitationNotFound if absent.
	GetByToken(ctx context.Context, token string) (*domain.Invitation, error)
	// GetDetailByID retrieves an invitation with guest, event, and attendance joined
	GetDetailByID(ctx context.Context, id string) (*InvitationRecord, error)
	// GetDetailByToken retrieves an invitation with guest, event, and attendance joined
	GetDetailByToken(ctx context.Context, token string) (*InvitationRecord, error)
	// ListByEvent retrieves all invitations for an event with guest and
	// attendance joined, newest first
	ListByEvent(ctx context.Context, eventID string) ([]*InvitationRecord, error)
	// UpdateRsvp overwrites the RSVP status. Returns domain.ErrInvitationNotFound
	// if the invitation does not exist.
	UpdateRsvp(ctx context.Context, id, status string) error
	// Delete removes an invitation and its attendance row, leaving the guest.
	// Returns domain.ErrInvitationNotFound if absent.
	Delete(ctx context.Context, id string) error
}
