package dto

// ListGuestsQuery represents query parameters for the guest directory listing.
// EventID filters to guests not yet invited to that event; Search is a
// case-insensitive substring match over name, whatsapp, and area.
type ListGuestsQuery struct {
	EventID string `form:"event_id" binding:"omitempty,uuid"`
	Search  string `form:"search" binding:"omitempty,max=255"`
}

// GuestResponse represents guest data in response
type GuestResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Whatsapp  string `json:"whatsapp"`
	Address   string `json:"address,omitempty"`
	Area      string `json:"area,omitempty"`
	CreatedAt string `json:"created_at"`
}

// ListGuestsResponse represents the guest directory listing
type ListGuestsResponse struct {
	Guests     []GuestResponse `json:"guests"`
	TotalCount int             `json:"total_count"`
}
