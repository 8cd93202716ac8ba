package dto

import "strings"

// ImportRow is one guest record from a bulk import. The transport layer has
// already parsed the file; only field presence is validated here.
type ImportRow struct {
	Name     string `json:"name"`
	Whatsapp string `json:"whatsapp"`
	Address  string `json:"address,omitempty"`
	Area     string `json:"area,omitempty"`
}

// Validate reports whether the row carries its required fields
func (r *ImportRow) Validate() (bool, string) {
	if strings.TrimSpace(r.Name) == "" {
		return false, "Name is required"
	}
	if strings.TrimSpace(r.Whatsapp) == "" {
		return false, "Whatsapp is required"
	}
	return true, ""
}

// ImportRequest represents a bulk guest import into one event
type ImportRequest struct {
	EventID string      `json:"event_id" binding:"required,uuid"`
	Rows    []ImportRow `json:"rows" binding:"required,min=1"`
}

// Validate checks required fields
func (r *ImportRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.EventID) == "" {
		return false, "Event ID is required"
	}
	if len(r.Rows) == 0 {
		return false, "At least one row is required"
	}
	return true, ""
}

// Import row outcome statuses
const (
	ImportRowSuccess = "success"
	ImportRowSkipped = "skipped"
	ImportRowError   = "error"
)

// ImportRowResult records the outcome of a single row
type ImportRowResult struct {
	Row     int    `json:"row"`
	Name    string `json:"name,omitempty"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ImportReport is the authoritative record of what happened to each row.
// The batch never partially rolls back.
type ImportReport struct {
	Success int               `json:"success"`
	Skipped int               `json:"skipped"`
	Errors  int               `json:"errors"`
	Details []ImportRowResult `json:"details"`
}
