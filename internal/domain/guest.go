package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Guest represents a person who may be invited to zero or more events.
// Guests are deduplicated by WhatsApp number across the whole directory.
type Guest struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Whatsapp  string    `json:"whatsapp"`
	Address   string    `json:"address,omitempty"`
	Area      string    `json:"area,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewGuest creates a new guest. Name and whatsapp are mandatory; whatsapp is
// trimmed but otherwise compared verbatim (no phone-number canonicalization).
func NewGuest(name, whatsapp, address, area string) (*Guest, error) {
	name = strings.TrimSpace(name)
	whatsapp = NormalizeContact(whatsapp)

	if name == "" {
		return nil, errors.New("guest name is required")
	}
	if whatsapp == "" {
		return nil, errors.New("guest whatsapp is required")
	}

	now := time.Now()
	return &Guest{
		ID:        uuid.New().String(),
		Name:      name,
		Whatsapp:  whatsapp,
		Address:   strings.TrimSpace(address),
		Area:      strings.TrimSpace(area),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// NormalizeContact trims surrounding whitespace. Numbers with different
// formatting (with/without country code) stay distinct guests.
func NormalizeContact(contact string) string {
	return strings.TrimSpace(contact)
}

// FillMissing copies non-empty address/area values into blank fields.
// Existing non-empty fields are never overwritten. Returns true when
// anything changed.
func (g *Guest) FillMissing(address, area string) bool {
	changed := false
	if g.Address == "" && strings.TrimSpace(address) != "" {
		g.Address = strings.TrimSpace(address)
		changed = true
	}
	if g.Area == "" && strings.TrimSpace(area) != "" {
		g.Area = strings.TrimSpace(area)
		changed = true
	}
	if changed {
		g.UpdatedAt = time.Now()
	}
	return changed
}
