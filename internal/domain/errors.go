package domain

import "errors"

var (
	// ErrGuestNotFound is returned when a guest does not exist
	ErrGuestNotFound = errors.New("guest not found")
	// ErrEventNotFound is returned when an event does not exist
	ErrEventNotFound = errors.New("event not found")
	// ErrInvitationNotFound is returned when an invitation does not exist
	ErrInvitationNotFound = errors.New("invitation not found")
	// ErrUserNotFound is returned when a user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateInvitation is returned when a guest is already invited to an event
	ErrDuplicateInvitation = errors.New("guest already invited to this event")
	// ErrGuestContactExists is returned when another guest already holds the contact number.
	// Safe to retry as a read: the winning row is already in place.
	ErrGuestContactExists = errors.New("guest with this contact already exists")
	// ErrTokenConflict is returned when a generated token collides with an existing one.
	// Retryable with a freshly generated token.
	ErrTokenConflict = errors.New("invitation token already exists")
	// ErrUsernameExists is returned when a username is already taken
	ErrUsernameExists = errors.New("username already exists")

	// ErrInvalidToken is returned when a check-in token resolves to no invitation
	ErrInvalidToken = errors.New("invalid invitation token")
	// ErrAlreadyCheckedIn is returned by the attendance store when an invitation
	// already has an attendance row. The check-in flow converts it into a
	// successful already-checked-in result, never a caller-visible error.
	ErrAlreadyCheckedIn = errors.New("invitation already checked in")

	// ErrInvalidRsvpStatus is returned for RSVP values outside confirmed/rejected
	ErrInvalidRsvpStatus = errors.New("invalid rsvp status")
)
