package repository

import (
	"context"
	"time"

	"github.com/eznproject/undangan/internal/domain"
)

// RecentCheckin is one row of the live check-in feed
type RecentCheckin struct {
	InvitationID string
	GuestName    string
	EventTitle   string
	CheckinTime  time.Time
}

// AttendanceRepository defines the interface for the attendance ledger.
// The insert is the atomicity boundary for check-in: concurrent creates for
// the same invitation are serialized by the unique constraint, and losers
// get domain.ErrAlreadyCheckedIn.
type AttendanceRepository interface {
	// Create inserts a check-in row. Returns domain.ErrAlreadyCheckedIn when
	// the invitation already has one.
	Create(ctx context.Context, attendance *domain.Attendance) error
	// GetByInvitationID retrieves the attendance row for an invitation,
	// or nil when the invitation has not checked in.
	GetByInvitationID(ctx context.Context, invitationID string) (*domain.Attendance, error)
	// RecentCheckins lists the most recent check-ins with guest and event
	// joined, newest first. eventID, when set, scopes the feed to one event.
	RecentCheckins(ctx context.Context, eventID string, limit int) ([]*RecentCheckin, error)
}
