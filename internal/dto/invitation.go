package dto

import "strings"

// CreateInvitationRequest adds a guest to an event. The guest is looked up by
// whatsapp number and created if new, then invited.
type CreateInvitationRequest struct {
	EventID  string `json:"event_id" binding:"required,uuid"`
	Name     string `json:"name" binding:"required,max=255"`
	Whatsapp string `json:"whatsapp" binding:"required,max=50"`
	Address  string `json:"address" binding:"omitempty,max=500"`
	Area     string `json:"area" binding:"omitempty,max=255"`
}

// Validate checks required fields
func (r *CreateInvitationRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.EventID) == "" {
		return false, "Event ID is required"
	}
	if strings.TrimSpace(r.Name) == "" {
		return false, "Name is required"
	}
	if strings.TrimSpace(r.Whatsapp) == "" {
		return false, "Whatsapp is required"
	}
	return true, ""
}

// BatchInviteRequest invites already-registered guests to an event
type BatchInviteRequest struct {
	EventID  string   `json:"event_id" binding:"required,uuid"`
	GuestIDs []string `json:"guest_ids" binding:"required,min=1"`
}

// Validate checks required fields
func (r *BatchInviteRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.EventID) == "" {
		return false, "Event ID is required"
	}
	if len(r.GuestIDs) == 0 {
		return false, "At least one guest ID is required"
	}
	return true, ""
}

// RsvpRequest sets the RSVP status of an invitation
type RsvpRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed rejected"`
}

// Validate checks the status value
func (r *RsvpRequest) Validate() (bool, string) {
	if r.Status != "confirmed" && r.Status != "rejected" {
		return false, "Status must be confirmed or rejected"
	}
	return true, ""
}

// AttendanceInfo represents check-in data nested in invitation responses
type AttendanceInfo struct {
	CheckinTime string `json:"checkin_time"`
	Status      string `json:"status"`
}

// InvitationResponse represents an invitation with its joined guest, event,
// and attendance data
type InvitationResponse struct {
	ID         string          `json:"id"`
	EventID    string          `json:"event_id"`
	GuestID    string          `json:"guest_id"`
	Token      string          `json:"token"`
	RsvpStatus string          `json:"rsvp_status"`
	URL        string          `json:"url,omitempty"`
	Guest      *GuestResponse  `json:"guest,omitempty"`
	Event      *EventResponse  `json:"event,omitempty"`
	Attendance *AttendanceInfo `json:"attendance,omitempty"`
	CreatedAt  string          `json:"created_at"`
}

// ListInvitationsResponse represents invitations for one event, newest first
type ListInvitationsResponse struct {
	Invitations []InvitationResponse `json:"invitations"`
	TotalCount  int                  `json:"total_count"`
}
