package domain

import (
	"testing"
)

func TestNewGuest(t *testing.T) {
	tests := []struct {
		name      string
		guestName string
		whatsapp  string
		address   string
		area      string
		wantErr   bool
	}{
		{
			name:      "valid guest",
			guestName: "Budi Santoso",
			whatsapp:  "081234567890",
			address:   "Jl. Merdeka 1",
			area:      "Jakarta",
			wantErr:   false,
		},
		{
			name:      "missing name",
			guestName: "",
			whatsapp:  "081234567890",
			wantErr:   true,
		},
		{
			name:      "whitespace-only name",
			guestName: "   ",
			whatsapp:  "081234567890",
			wantErr:   true,
		},
		{
			name:      "missing whatsapp",
			guestName: "Budi Santoso",
			whatsapp:  "",
			wantErr:   true,
		},
		{
			name:      "whitespace-only whatsapp",
			guestName: "Budi Santoso",
			whatsapp:  "  ",
			wantErr:   true,
		},
		{
			name:      "optional fields empty",
			guestName: "Budi Santoso",
			whatsapp:  "081234567890",
			wantErr:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			guest, err := NewGuest(tt.guestName, tt.whatsapp, tt.address, tt.area)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got nil")
				}
				return
			}

			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}

			if guest.ID == "" {
				t.Error("Expected guest ID to be set")
			}
			if guest.Name != tt.guestName {
				t.Errorf("Expected name %s, got %s", tt.guestName, guest.Name)
			}
			if guest.CreatedAt.IsZero() {
				t.Error("Expected created_at to be set")
			}
		})
	}
}

func TestNewGuest_TrimsContact(t *testing.T) {
	guest, err := NewGuest("Budi", "  081234567890  ", "", "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if guest.Whatsapp != "081234567890" {
		t.Errorf("Expected trimmed whatsapp, got %q", guest.Whatsapp)
	}
}

func TestNormalizeContact(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"081234567890", "081234567890"},
		{" 081234567890 ", "081234567890"},
		{"\t08123\n", "08123"},
		// No canonicalization: country-code variants stay distinct.
		{"+6281234567890", "+6281234567890"},
	}

	for _, tt := range tests {
		if got := NormalizeContact(tt.input); got != tt.want {
			t.Errorf("NormalizeContact(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGuest_FillMissing(t *testing.T) {
	guest, _ := NewGuest("Budi", "08123", "", "")

	changed := guest.FillMissing("Jl. Merdeka 1", "Jakarta")
	if !changed {
		t.Error("Expected FillMissing to report a change")
	}
	if guest.Address != "Jl. Merdeka 1" {
		t.Errorf("Expected address to be filled, got %q", guest.Address)
	}
	if guest.Area != "Jakarta" {
		t.Errorf("Expected area to be filled, got %q", guest.Area)
	}

	// Existing values are never overwritten.
	changed = guest.FillMissing("Jl. Lain 2", "Bandung")
	if changed {
		t.Error("Expected no change when fields already set")
	}
	if guest.Address != "Jl. Merdeka 1" {
		t.Errorf("Expected address unchanged, got %q", guest.Address)
	}

	// Blanks never overwrite anything either.
	empty, _ := NewGuest("Siti", "08124", "", "")
	if empty.FillMissing("", "  ") {
		t.Error("Expected no change from blank inputs")
	}
}
