package service

import (
	"context"
	"testing"

	"github.com/eznproject/undangan/internal/dto"
)

func newImportService(store *MockStore) (ImportService, GuestService, EventService, InvitationService) {
	guestSvc, eventSvc, invitationSvc := newTestServices(store)
	importSvc := NewImportService(store.Events(), guestSvc, invitationSvc)
	return importSvc, guestSvc, eventSvc, invitationSvc
}

func TestImportService_BulkImport_Idempotent(t *testing.T) {
	store := NewMockStore()
	importSvc, _, eventSvc, _ := newImportService(store)
	ctx := context.Background()

	event := mustEvent(t, eventSvc)
	rows := []dto.ImportRow{{Name: "Jane", Whatsapp: "08123"}}

	first, err := importSvc.BulkImport(ctx, event.ID, rows)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if first.Success != 1 || first.Skipped != 0 || first.Errors != 0 {
		t.Errorf("First run: expected success=1, got %+v", first)
	}

	// Running the same batch again must not duplicate anything.
	second, err := importSvc.BulkImport(ctx, event.ID, rows)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if second.Success != 0 || second.Skipped != 1 || second.Errors != 0 {
		t.Errorf("Second run: expected skipped=1, got %+v", second)
	}

	guests, _ := store.Guests().Find(ctx, "", "")
	if len(guests) != 1 {
		t.Errorf("Expected exactly 1 guest, got %d", len(guests))
	}
	invitations, _ := store.Invitations().ListByEvent(ctx, event.ID)
	if len(invitations) != 1 {
		t.Errorf("Expected exactly 1 invitation, got %d", len(invitations))
	}
}

func TestImportService_BulkImport_RowErrorsDoNotAbort(t *testing.T) {
	store := NewMockStore()
	importSvc, _, eventSvc, _ := newImportService(store)
	ctx := context.Background()

	event := mustEvent(t, eventSvc)
	rows := []dto.ImportRow{
		{Name: "", Whatsapp: "08120"},       // missing name
		{Name: "Jane", Whatsapp: ""},        // missing contact
		{Name: "Budi", Whatsapp: "08121"},   // fine
		{Name: "Siti", Whatsapp: "08122"},   // fine
	}

	report, err := importSvc.BulkImport(ctx, event.ID, rows)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if report.Success != 2 || report.Errors != 2 || report.Skipped != 0 {
		t.Errorf("Expected success=2 errors=2, got %+v", report)
	}
	if len(report.Details) != 4 {
		t.Fatalf("Expected 4 row details, got %d", len(report.Details))
	}

	// Details keep input order and per-row messages.
	if report.Details[0].Row != 1 || report.Details[0].Status != dto.ImportRowError {
		t.Errorf("Expected row 1 error, got %+v", report.Details[0])
	}
	if report.Details[0].Message == "" {
		t.Error("Expected a message on the failed row")
	}
	if report.Details[2].Status != dto.ImportRowSuccess {
		t.Errorf("Expected row 3 success, got %+v", report.Details[2])
	}
}

func TestImportService_BulkImport_SharedGuestAcrossEvents(t *testing.T) {
	store := NewMockStore()
	importSvc, _, eventSvc, _ := newImportService(store)
	ctx := context.Background()

	eventA := mustEvent(t, eventSvc)
	eventB := mustEvent(t, eventSvc)
	rows := []dto.ImportRow{{Name: "Jane", Whatsapp: "08123"}}

	if _, err := importSvc.BulkImport(ctx, eventA.ID, rows); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	report, err := importSvc.BulkImport(ctx, eventB.ID, rows)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if report.Success != 1 {
		t.Errorf("Expected invite into second event to succeed, got %+v", report)
	}

	// Still one guest; the directory is shared across events.
	guests, _ := store.Guests().Find(ctx, "", "")
	if len(guests) != 1 {
		t.Errorf("Expected 1 guest, got %d", len(guests))
	}
}

func TestImportService_InviteExisting(t *testing.T) {
	store := NewMockStore()
	importSvc, guestSvc, eventSvc, invitationSvc := newImportService(store)
	ctx := context.Background()

	event := mustEvent(t, eventSvc)
	g1, _ := guestSvc.FindOrCreate(ctx, "Budi", "08121", "", "")
	g2, _ := guestSvc.FindOrCreate(ctx, "Siti", "08122", "", "")

	// g1 is already invited.
	if _, err := invitationSvc.Invite(ctx, event.ID, g1.ID); err != nil {
		t.Fatalf("Failed to invite: %v", err)
	}

	report, err := importSvc.InviteExisting(ctx, event.ID, []string{g1.ID, g2.ID})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if report.Success != 1 || report.Skipped != 1 {
		t.Errorf("Expected success=1 skipped=1, got %+v", report)
	}
}

func TestImportService_UnknownEvent(t *testing.T) {
	store := NewMockStore()
	importSvc, _, _, _ := newImportService(store)
	ctx := context.Background()

	if _, err := importSvc.BulkImport(ctx, "missing", []dto.ImportRow{{Name: "Jane", Whatsapp: "08123"}}); err == nil {
		t.Error("Expected error for unknown event")
	}
	if _, err := importSvc.InviteExisting(ctx, "missing", []string{"g1"}); err == nil {
		t.Error("Expected error for unknown event")
	}
}
