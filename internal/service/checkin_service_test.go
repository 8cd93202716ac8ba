package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/eznproject/undangan/internal/domain"
)

func TestCheckinService_CheckIn(t *testing.T) {
	store := NewMockStore()
	guestSvc, eventSvc, invitationSvc := newTestServices(store)
	checkinSvc := NewCheckinService(store.Invitations(), store.Attendances())
	ctx := context.Background()

	event := mustEvent(t, eventSvc)
	guest, _ := guestSvc.FindOrCreate(ctx, "Budi", "08123", "", "")
	invitation, _ := invitationSvc.Invite(ctx, event.ID, guest.ID)

	first, err := checkinSvc.CheckIn(ctx, invitation.Token)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if first.AlreadyCheckedIn {
		t.Error("Expected first scan to be a fresh check-in")
	}
	if first.Message != MsgCheckinSuccess {
		t.Errorf("Expected %q, got %q", MsgCheckinSuccess, first.Message)
	}
	if first.Guest == nil || first.Guest.Name != "Budi" {
		t.Error("Expected guest data in scan response")
	}

	second, err := checkinSvc.CheckIn(ctx, invitation.Token)
	if err != nil {
		t.Fatalf("Unexpected error on repeat scan: %v", err)
	}
	if !second.AlreadyCheckedIn {
		t.Error("Expected repeat scan to be flagged")
	}
	if second.Message != MsgAlreadyScanned {
		t.Errorf("Expected %q, got %q", MsgAlreadyScanned, second.Message)
	}
	if second.CheckinTime != first.CheckinTime {
		t.Errorf("Expected original checkin time %s, got %s", first.CheckinTime, second.CheckinTime)
	}
}

func TestCheckinService_CheckIn_UnknownToken(t *testing.T) {
	store := NewMockStore()
	checkinSvc := NewCheckinService(store.Invitations(), store.Attendances())
	ctx := context.Background()

	_, err := checkinSvc.CheckIn(ctx, "no-such-token")
	if !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}

	// No attendance row was created.
	recent, _ := store.Attendances().RecentCheckins(ctx, "", 100)
	if len(recent) != 0 {
		t.Errorf("Expected no attendance rows, got %d", len(recent))
	}
}

func TestCheckinService_CheckIn_Concurrent(t *testing.T) {
	store := NewMockStore()
	guestSvc, eventSvc, invitationSvc := newTestServices(store)
	checkinSvc := NewCheckinService(store.Invitations(), store.Attendances())
	ctx := context.Background()

	event := mustEvent(t, eventSvc)
	guest, _ := guestSvc.FindOrCreate(ctx, "Budi", "08123", "", "")
	invitation, _ := invitationSvc.Invite(ctx, event.ID, guest.ID)

	const workers = 20
	times := make([]string, workers)
	fresh := make([]bool, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			resp, err := checkinSvc.CheckIn(ctx, invitation.Token)
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}
			times[idx] = resp.CheckinTime
			fresh[idx] = !resp.AlreadyCheckedIn
		}(i)
	}
	wg.Wait()

	freshCount := 0
	for i := 0; i < workers; i++ {
		if fresh[i] {
			freshCount++
		}
		if times[i] != times[0] {
			t.Errorf("Expected every scan to see the same checkin time, got %s and %s", times[0], times[i])
		}
	}
	if freshCount != 1 {
		t.Errorf("Expected exactly 1 fresh check-in, got %d", freshCount)
	}

	att, _ := store.Attendances().GetByInvitationID(ctx, invitation.ID)
	if att == nil {
		t.Fatal("Expected one attendance row")
	}
}
