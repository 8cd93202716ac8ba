package dto

import "strings"

// ScanRequest carries the token presented at the check-in scanner
type ScanRequest struct {
	Token string `json:"token" binding:"required"`
}

// Validate checks the token is present
func (r *ScanRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.Token) == "" {
		return false, "Token is required"
	}
	return true, ""
}

// ScanResponse is the check-in outcome. A repeated scan is a successful
// outcome carrying the original checkin time, not an error.
type ScanResponse struct {
	AlreadyCheckedIn bool           `json:"already_checked_in"`
	CheckinTime      string         `json:"checkin_time"`
	Message          string         `json:"message"`
	Guest            *GuestResponse `json:"guest,omitempty"`
	Event            *EventResponse `json:"event,omitempty"`
}
