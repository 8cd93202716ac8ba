package service

import (
	"context"
	"sync"
	"testing"

	"github.com/eznproject/undangan/internal/dto"
)

func TestGuestService_FindOrCreate(t *testing.T) {
	store := NewMockStore()
	svc := NewGuestService(store.Guests())
	ctx := context.Background()

	first, err := svc.FindOrCreate(ctx, "Budi", "08123", "Jl. Merdeka", "Jakarta")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Same contact resolves to the same guest, unchanged.
	second, err := svc.FindOrCreate(ctx, "Budi Lain", "08123", "", "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("Expected same guest ID, got %s and %s", first.ID, second.ID)
	}
	if second.Name != "Budi" {
		t.Errorf("Expected existing name preserved, got %s", second.Name)
	}
}

func TestGuestService_FindOrCreate_TrimsContact(t *testing.T) {
	store := NewMockStore()
	svc := NewGuestService(store.Guests())
	ctx := context.Background()

	first, _ := svc.FindOrCreate(ctx, "Budi", "08123", "", "")
	second, err := svc.FindOrCreate(ctx, "Budi", "  08123  ", "", "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if second.ID != first.ID {
		t.Error("Expected trimmed contact to resolve to the same guest")
	}
}

func TestGuestService_FindOrCreate_Validation(t *testing.T) {
	store := NewMockStore()
	svc := NewGuestService(store.Guests())
	ctx := context.Background()

	if _, err := svc.FindOrCreate(ctx, "", "08123", "", ""); err == nil {
		t.Error("Expected error for missing name")
	}
	if _, err := svc.FindOrCreate(ctx, "Budi", "", "", ""); err == nil {
		t.Error("Expected error for missing contact")
	}
}

func TestGuestService_FindOrCreate_FillsBlankFields(t *testing.T) {
	store := NewMockStore()
	svc := NewGuestService(store.Guests())
	ctx := context.Background()

	first, _ := svc.FindOrCreate(ctx, "Budi", "08123", "", "")
	if first.Address != "" {
		t.Fatalf("Expected empty address, got %q", first.Address)
	}

	second, err := svc.FindOrCreate(ctx, "Budi", "08123", "Jl. Merdeka", "Jakarta")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if second.Address != "Jl. Merdeka" || second.Area != "Jakarta" {
		t.Errorf("Expected blank fields filled, got %q / %q", second.Address, second.Area)
	}

	// Non-empty fields are never overwritten.
	third, _ := svc.FindOrCreate(ctx, "Budi", "08123", "Jl. Lain", "Bandung")
	if third.Address != "Jl. Merdeka" {
		t.Errorf("Expected address preserved, got %q", third.Address)
	}
}

func TestGuestService_FindOrCreate_Concurrent(t *testing.T) {
	store := NewMockStore()
	svc := NewGuestService(store.Guests())
	ctx := context.Background()

	const workers = 20
	ids := make([]string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			guest, err := svc.FindOrCreate(ctx, "Budi", "08123", "", "")
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}
			ids[idx] = guest.ID
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		if ids[i] != ids[0] {
			t.Fatalf("Expected all calls to return the same guest, got %s and %s", ids[0], ids[i])
		}
	}

	guests, _ := store.Guests().Find(ctx, "", "")
	if len(guests) != 1 {
		t.Errorf("Expected exactly 1 guest row, got %d", len(guests))
	}
}

func TestGuestService_List(t *testing.T) {
	store := NewMockStore()
	svc := NewGuestService(store.Guests())
	ctx := context.Background()

	svcMustCreateGuest(t, svc, "Budi Santoso", "08121")
	svcMustCreateGuest(t, svc, "Siti Aminah", "08122")

	resp, err := svc.List(ctx, &dto.ListGuestsQuery{Search: "siti"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if resp.TotalCount != 1 {
		t.Fatalf("Expected 1 match, got %d", resp.TotalCount)
	}
	if resp.Guests[0].Name != "Siti Aminah" {
		t.Errorf("Expected Siti Aminah, got %s", resp.Guests[0].Name)
	}
}

func svcMustCreateGuest(t *testing.T, svc GuestService, name, whatsapp string) {
	t.Helper()
	if _, err := svc.FindOrCreate(context.Background(), name, whatsapp, "", ""); err != nil {
		t.Fatalf("Failed to create guest: %v", err)
	}
}
