package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Attendance records a single check-in against an invitation. At most one
// attendance row ever exists per invitation, enforced by a storage-level
// unique constraint on invitation_id.
type Attendance struct {
	ID           string    `json:"id"`
	InvitationID string    `json:"invitation_id"`
	CheckinTime  time.Time `json:"checkin_time"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// AttendanceStatus constants. Only checked_in is used today; the column is a
// placeholder for future states.
const (
	AttendanceStatusCheckedIn = "checked_in"
)

// NewAttendance creates a check-in record stamped with the current time.
func NewAttendance(invitationID string) (*Attendance, error) {
	if invitationID == "" {
		return nil, errors.New("invitation_id is required")
	}

	now := time.Now()
	return &Attendance{
		ID:           uuid.New().String(),
		InvitationID: invitationID,
		CheckinTime:  now,
		Status:       AttendanceStatusCheckedIn,
		CreatedAt:    now,
	}, nil
}
