package dto

// EventStatsResponse is the read-side aggregate over one event's invitations
// and attendance. AttendanceRate is a percentage with one decimal (4 of 10
// checked in is 40.0), 0 when the event has no invitations.
type EventStatsResponse struct {
	TotalGuests     int     `json:"total_guests"`
	CheckedInGuests int     `json:"checked_in_guests"`
	PendingGuests   int     `json:"pending_guests"`
	RsvpConfirmed   int     `json:"rsvp_confirmed"`
	RsvpPending     int     `json:"rsvp_pending"`
	RsvpRejected    int     `json:"rsvp_rejected"`
	AttendanceRate  float64 `json:"attendance_rate"`
}

// RecentCheckinEntry is one row of the live check-in feed
type RecentCheckinEntry struct {
	InvitationID string `json:"invitation_id"`
	GuestName    string `json:"guest_name"`
	EventTitle   string `json:"event_title"`
	CheckinTime  string `json:"checkin_time"`
}

// DashboardQuery represents query parameters for the dashboard
type DashboardQuery struct {
	EventID string `form:"event_id" binding:"omitempty,uuid"`
}

// DashboardResponse combines event stats with the most recent check-ins
type DashboardResponse struct {
	Stats          EventStatsResponse   `json:"stats"`
	RecentCheckins []RecentCheckinEntry `json:"recent_checkins"`
}
