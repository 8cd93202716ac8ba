package dto

import "strings"

// CreateEventRequest represents request to create a new event
type CreateEventRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Location    string `json:"location" binding:"required,max=500"`
	Description string `json:"description" binding:"omitempty"`
}

// Validate checks required fields beyond binding tags
func (r *CreateEventRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.Title) == "" {
		return false, "Title is required"
	}
	if strings.TrimSpace(r.Date) == "" {
		return false, "Date is required"
	}
	if strings.TrimSpace(r.Time) == "" {
		return false, "Time is required"
	}
	if strings.TrimSpace(r.Location) == "" {
		return false, "Location is required"
	}
	return true, ""
}

// EventResponse represents event data in response
type EventResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// EventDetailResponse is the event page payload: the event itself, its
// aggregate statistics, and the most recent check-ins.
type EventDetailResponse struct {
	Event          EventResponse        `json:"event"`
	Stats          EventStatsResponse   `json:"stats"`
	RecentCheckins []RecentCheckinEntry `json:"recent_checkins"`
}

// ListEventsResponse represents the list of events, newest first
type ListEventsResponse struct {
	Events     []EventResponse `json:"events"`
	TotalCount int             `json:"total_count"`
}
