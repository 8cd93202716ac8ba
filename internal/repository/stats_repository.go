package repository

import "context"

// EventStats holds raw counts for one event. Derived values (attendance
// rate) are computed by the service layer.
type EventStats struct {
	TotalGuests     int
	CheckedInGuests int
	RsvpConfirmed   int
	RsvpPending     int
	RsvpRejected    int
}

// StatsRepository computes read-side aggregates over the four stores
type StatsRepository interface {
	// EventStats counts an event's invitations, check-ins, and RSVP split in
	// one aggregate query. An empty eventID aggregates across all events.
	EventStats(ctx context.Context, eventID string) (*EventStats, error)
}
