package service

import (
	"context"
	"errors"
	"testing"

	"github.com/eznproject/undangan/internal/domain"
)

func TestStatsService_EventStats(t *testing.T) {
	store := NewMockStore()
	guestSvc, eventSvc, invitationSvc := newTestServices(store)
	checkinSvc := NewCheckinService(store.Invitations(), store.Attendances())
	statsSvc := NewStatsService(store.Stats(), store.Attendances(), store.Events(), nil)
	ctx := context.Background()

	event := mustEvent(t, eventSvc)

	// 10 invitations, 4 checked in, 6 confirmed.
	for i := 0; i < 10; i++ {
		guest, _ := guestSvc.FindOrCreate(ctx, "Guest", "0812-"+string(rune('a'+i)), "", "")
		invitation, err := invitationSvc.Invite(ctx, event.ID, guest.ID)
		if err != nil {
			t.Fatalf("Failed to invite: %v", err)
		}
		if i < 4 {
			if _, err := checkinSvc.CheckIn(ctx, invitation.Token); err != nil {
				t.Fatalf("Failed to check in: %v", err)
			}
		}
		if i < 6 {
			if err := invitationSvc.SetRsvp(ctx, invitation.ID, domain.RsvpStatusConfirmed); err != nil {
				t.Fatalf("Failed to set rsvp: %v", err)
			}
		}
	}

	stats, err := statsSvc.EventStats(ctx, event.ID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if stats.TotalGuests != 10 {
		t.Errorf("Expected 10 total guests, got %d", stats.TotalGuests)
	}
	if stats.CheckedInGuests != 4 {
		t.Errorf("Expected 4 checked in, got %d", stats.CheckedInGuests)
	}
	if stats.PendingGuests != 6 {
		t.Errorf("Expected 6 pending guests, got %d", stats.PendingGuests)
	}
	if stats.RsvpConfirmed != 6 {
		t.Errorf("Expected 6 confirmed, got %d", stats.RsvpConfirmed)
	}
	if stats.RsvpPending != 4 {
		t.Errorf("Expected 4 rsvp pending, got %d", stats.RsvpPending)
	}
	if stats.AttendanceRate != 40.0 {
		t.Errorf("Expected attendance rate 40.0, got %v", stats.AttendanceRate)
	}
}

func TestStatsService_EventStats_Empty(t *testing.T) {
	store := NewMockStore()
	_, eventSvc, _ := newTestServices(store)
	statsSvc := NewStatsService(store.Stats(), store.Attendances(), store.Events(), nil)
	ctx := context.Background()

	event := mustEvent(t, eventSvc)

	stats, err := statsSvc.EventStats(ctx, event.ID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if stats.TotalGuests != 0 || stats.AttendanceRate != 0 {
		t.Errorf("Expected zeroed stats, got %+v", stats)
	}
}

func TestStatsService_EventStats_UnknownEvent(t *testing.T) {
	store := NewMockStore()
	statsSvc := NewStatsService(store.Stats(), store.Attendances(), store.Events(), nil)

	_, err := statsSvc.EventStats(context.Background(), "missing")
	if !errors.Is(err, domain.ErrEventNotFound) {
		t.Errorf("Expected ErrEventNotFound, got %v", err)
	}
}

func TestStatsService_EventStats_OneDecimal(t *testing.T) {
	store := NewMockStore()
	guestSvc, eventSvc, invitationSvc := newTestServices(store)
	checkinSvc := NewCheckinService(store.Invitations(), store.Attendances())
	statsSvc := NewStatsService(store.Stats(), store.Attendances(), store.Events(), nil)
	ctx := context.Background()

	event := mustEvent(t, eventSvc)

	// 1 of 3 checked in: 33.333... rounds to 33.3.
	for i := 0; i < 3; i++ {
		guest, _ := guestSvc.FindOrCreate(ctx, "Guest", "0813-"+string(rune('a'+i)), "", "")
		invitation, _ := invitationSvc.Invite(ctx, event.ID, guest.ID)
		if i == 0 {
			if _, err := checkinSvc.CheckIn(ctx, invitation.Token); err != nil {
				t.Fatalf("Failed to check in: %v", err)
			}
		}
	}

	stats, err := statsSvc.EventStats(ctx, event.ID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if stats.AttendanceRate != 33.3 {
		t.Errorf("Expected attendance rate 33.3, got %v", stats.AttendanceRate)
	}
}

func TestStatsService_Dashboard(t *testing.T) {
	store := NewMockStore()
	guestSvc, eventSvc, invitationSvc := newTestServices(store)
	checkinSvc := NewCheckinService(store.Invitations(), store.Attendances())
	statsSvc := NewStatsService(store.Stats(), store.Attendances(), store.Events(), nil)
	ctx := context.Background()

	event := mustEvent(t, eventSvc)
	guest, _ := guestSvc.FindOrCreate(ctx, "Budi", "08123", "", "")
	invitation, _ := invitationSvc.Invite(ctx, event.ID, guest.ID)
	if _, err := checkinSvc.CheckIn(ctx, invitation.Token); err != nil {
		t.Fatalf("Failed to check in: %v", err)
	}

	dash, err := statsSvc.Dashboard(ctx, event.ID)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if dash.Stats.CheckedInGuests != 1 {
		t.Errorf("Expected 1 checked in, got %d", dash.Stats.CheckedInGuests)
	}
	if len(dash.RecentCheckins) != 1 {
		t.Fatalf("Expected 1 recent check-in, got %d", len(dash.RecentCheckins))
	}
	if dash.RecentCheckins[0].GuestName != "Budi" {
		t.Errorf("Expected guest name in feed, got %s", dash.RecentCheckins[0].GuestName)
	}

	// Event-agnostic dashboard aggregates everything.
	all, err := statsSvc.Dashboard(ctx, "")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if all.Stats.TotalGuests != 1 {
		t.Errorf("Expected 1 total guest, got %d", all.Stats.TotalGuests)
	}
}
