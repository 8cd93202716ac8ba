package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Invitation binds one guest to one event. The token is the sole credential
// for the public invitation view and for check-in; it is unique across the
// whole ledger, not just per event.
type Invitation struct {
	ID         string    `json:"id"`
	EventID    string    `json:"event_id"`
	GuestID    string    `json:"guest_id"`
	Token      string    `json:"token"`
	RsvpStatus string    `json:"rsvp_status"` // pending, confirmed, rejected
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// RsvpStatus constants
const (
	RsvpStatusPending   = "pending"
	RsvpStatusConfirmed = "confirmed"
	RsvpStatusRejected  = "rejected"
)

// NewInvitation creates a new pending invitation with an already generated token.
func NewInvitation(eventID, guestID, token string) (*Invitation, error) {
	if eventID == "" {
		return nil, errors.New("event_id is required")
	}
	if guestID == "" {
		return nil, errors.New("guest_id is required")
	}
	if token == "" {
		return nil, errors.New("token is required")
	}

	now := time.Now()
	return &Invitation{
		ID:         uuid.New().String(),
		EventID:    eventID,
		GuestID:    guestID,
		Token:      token,
		RsvpStatus: RsvpStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// ValidRsvpStatus reports whether status is an accepted RSVP submission value.
// Guests submit confirmed or rejected; pending is the initial state only.
func ValidRsvpStatus(status string) bool {
	return status == RsvpStatusConfirmed || status == RsvpStatusRejected
}
