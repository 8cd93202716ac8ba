package repository

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/eznproject/undangan/internal/domain"
	"github.com/eznproject/undangan/pkg/database"
)

func skipIfNoIntegration(t *testing.T) {
	if os.Getenv("INTEGRATION_TEST") != "true" {
		t.Skip("Skipping integration test. Set INTEGRATION_TEST=true to run.")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func setupTestDB(t *testing.T) *database.PostgresDB {
	ctx := context.Background()

	cfg := &database.PostgresConfig{
		Host:            getEnv("POSTGRES_HOST", "localhost"),
		Port:            5432,
		User:            getEnv("POSTGRES_USER", "postgres"),
		Password:        getEnv("POSTGRES_PASSWORD", ""),
		Database:        getEnv("POSTGRES_DB", "undangan_test"),
		SSLMode:         "disable",
		MaxConns:        10,
		MinConns:        1,
		MaxConnLifetime: 5 * time.Minute,
		MaxConnIdleTime: 1 * time.Minute,
		ConnectTimeout:  5 * time.Second,
		MaxRetries:      3,
		RetryInterval:   1 * time.Second,
	}

	db, err := database.NewPostgres(ctx, cfg)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(ctx, db.Pool()); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func cleanupTestData(t *testing.T, db *database.PostgresDB) {
	ctx := context.Background()
	for _, stmt := range []string{
		"DELETE FROM attendances",
		"DELETE FROM invitations",
		"DELETE FROM events WHERE title LIKE 'test-%'",
		"DELETE FROM guests WHERE whatsapp LIKE 'test-%'",
	} {
		if _, err := db.Pool().Exec(ctx, stmt); err != nil {
			t.Logf("Warning: failed to cleanup test data: %v", err)
		}
	}
}

func mustCreateEvent(t *testing.T, db *database.PostgresDB, title string) *domain.Event {
	t.Helper()
	event, err := domain.NewEvent(title, "2026-09-20", "18:00", "Gedung Test", "")
	if err != nil {
		t.Fatalf("Failed to build event: %v", err)
	}
	if err := NewPostgresEventRepository(db.Pool()).Create(context.Background(), event); err != nil {
		t.Fatalf("Failed to create event: %v", err)
	}
	return event
}

func mustCreateGuest(t *testing.T, db *database.PostgresDB, name, whatsapp string) *domain.Guest {
	t.Helper()
	guest, err := domain.NewGuest(name, whatsapp, "", "")
	if err != nil {
		t.Fatalf("Failed to build guest: %v", err)
	}
	if err := NewPostgresGuestRepository(db.Pool()).Create(context.Background(), guest); err != nil {
		t.Fatalf("Failed to create guest: %v", err)
	}
	return guest
}

func TestPostgresGuestRepository_DuplicateContact(t *testing.T) {
	skipIfNoIntegration(t)

	db := setupTestDB(t)
	defer db.Close()
	defer cleanupTestData(t, db)

	repo := NewPostgresGuestRepository(db.Pool())
	ctx := context.Background()

	mustCreateGuest(t, db, "Budi", "test-0811111")

	dup, _ := domain.NewGuest("Budi Lain", "test-0811111", "", "")
	err := repo.Create(ctx, dup)
	if !errors.Is(err, domain.ErrGuestContactExists) {
		t.Errorf("Expected ErrGuestContactExists, got %v", err)
	}

	// Loser re-reads the winner.
	winner, err := repo.GetByWhatsapp(ctx, "test-0811111")
	if err != nil {
		t.Fatalf("Failed to re-read winner: %v", err)
	}
	if winner.Name != "Budi" {
		t.Errorf("Expected winner row, got %s", winner.Name)
	}
}

func TestPostgresInvitationRepository_DuplicatePair(t *testing.T) {
	skipIfNoIntegration(t)

	db := setupTestDB(t)
	defer db.Close()
	defer cleanupTestData(t, db)

	repo := NewPostgresInvitationRepository(db.Pool())
	ctx := context.Background()

	event := mustCreateEvent(t, db, "test-dup-pair")
	guest := mustCreateGuest(t, db, "Budi", "test-0822222")

	inv1, _ := domain.NewInvitation(event.ID, guest.ID, "test-token-a")
	if err := repo.Create(ctx, inv1); err != nil {
		t.Fatalf("Failed to create invitation: %v", err)
	}

	inv2, _ := domain.NewInvitation(event.ID, guest.ID, "test-token-b")
	err := repo.Create(ctx, inv2)
	if !errors.Is(err, domain.ErrDuplicateInvitation) {
		t.Errorf("Expected ErrDuplicateInvitation, got %v", err)
	}
}

func TestPostgresInvitationRepository_TokenConflict(t *testing.T) {
	skipIfNoIntegration(t)

	db := setupTestDB(t)
	defer db.Close()
	defer cleanupTestData(t, db)

	repo := NewPostgresInvitationRepository(db.Pool())
	ctx := context.Background()

	event1 := mustCreateEvent(t, db, "test-token-conflict-1")
	event2 := mustCreateEvent(t, db, "test-token-conflict-2")
	guest := mustCreateGuest(t, db, "Budi", "test-0833333")

	inv1, _ := domain.NewInvitation(event1.ID, guest.ID, "test-token-collision")
	if err := repo.Create(ctx, inv1); err != nil {
		t.Fatalf("Failed to create invitation: %v", err)
	}

	inv2, _ := domain.NewInvitation(event2.ID, guest.ID, "test-token-collision")
	err := repo.Create(ctx, inv2)
	if !errors.Is(err, domain.ErrTokenConflict) {
		t.Errorf("Expected ErrTokenConflict, got %v", err)
	}
}

func TestPostgresAttendanceRepository_ConcurrentCheckin(t *testing.T) {
	skipIfNoIntegration(t)

	db := setupTestDB(t)
	defer db.Close()
	defer cleanupTestData(t, db)

	invRepo := NewPostgresInvitationRepository(db.Pool())
	attRepo := NewPostgresAttendanceRepository(db.Pool())
	ctx := context.Background()

	event := mustCreateEvent(t, db, "test-concurrent-checkin")
	guest := mustCreateGuest(t, db, "Budi", "test-0844444")
	inv, _ := domain.NewInvitation(event.ID, guest.ID, "test-token-concurrent")
	if err := invRepo.Create(ctx, inv); err != nil {
		t.Fatalf("Failed to create invitation: %v", err)
	}

	const workers = 10
	var wg sync.WaitGroup
	results := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			att, _ := domain.NewAttendance(inv.ID)
			results[idx] = attRepo.Create(ctx, att)
		}(i)
	}
	wg.Wait()

	wins, losses := 0, 0
	for _, err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, domain.ErrAlreadyCheckedIn):
			losses++
		default:
			t.Errorf("Unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Errorf("Expected exactly 1 winning insert, got %d (losses %d)", wins, losses)
	}

	var count int
	err := db.Pool().QueryRow(ctx, "SELECT COUNT(*) FROM attendances WHERE invitation_id = $1", inv.ID).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count attendances: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected exactly 1 attendance row, got %d", count)
	}
}

func TestPostgresEventRepository_CascadeDelete(t *testing.T) {
	skipIfNoIntegration(t)

	db := setupTestDB(t)
	defer db.Close()
	defer cleanupTestData(t, db)

	eventRepo := NewPostgresEventRepository(db.Pool())
	guestRepo := NewPostgresGuestRepository(db.Pool())
	invRepo := NewPostgresInvitationRepository(db.Pool())
	attRepo := NewPostgresAttendanceRepository(db.Pool())
	ctx := context.Background()

	event := mustCreateEvent(t, db, "test-cascade")
	guest := mustCreateGuest(t, db, "Budi", "test-0855555")
	inv, _ := domain.NewInvitation(event.ID, guest.ID, "test-token-cascade")
	if err := invRepo.Create(ctx, inv); err != nil {
		t.Fatalf("Failed to create invitation: %v", err)
	}
	att, _ := domain.NewAttendance(inv.ID)
	if err := attRepo.Create(ctx, att); err != nil {
		t.Fatalf("Failed to create attendance: %v", err)
	}

	if err := eventRepo.Delete(ctx, event.ID); err != nil {
		t.Fatalf("Failed to delete event: %v", err)
	}

	if _, err := invRepo.GetByID(ctx, inv.ID); !errors.Is(err, domain.ErrInvitationNotFound) {
		t.Errorf("Expected invitation gone, got %v", err)
	}
	got, err := attRepo.GetByInvitationID(ctx, inv.ID)
	if err != nil || got != nil {
		t.Errorf("Expected attendance gone, got %v, %v", got, err)
	}
	// Guest survives.
	if _, err := guestRepo.GetByID(ctx, guest.ID); err != nil {
		t.Errorf("Expected guest to survive, got %v", err)
	}
}

func TestPostgresGuestRepository_Find(t *testing.T) {
	skipIfNoIntegration(t)

	db := setupTestDB(t)
	defer db.Close()
	defer cleanupTestData(t, db)

	guestRepo := NewPostgresGuestRepository(db.Pool())
	invRepo := NewPostgresInvitationRepository(db.Pool())
	ctx := context.Background()

	event := mustCreateEvent(t, db, "test-find")
	invited := mustCreateGuest(t, db, "Invited Guest", "test-0866666")
	free := mustCreateGuest(t, db, "Free Guest", "test-0877777")
	inv, _ := domain.NewInvitation(event.ID, invited.ID, "test-token-find")
	if err := invRepo.Create(ctx, inv); err != nil {
		t.Fatalf("Failed to create invitation: %v", err)
	}

	guests, err := guestRepo.Find(ctx, event.ID, "")
	if err != nil {
		t.Fatalf("Failed to find guests: %v", err)
	}
	for _, g := range guests {
		if g.ID == invited.ID {
			t.Error("Expected invited guest to be excluded")
		}
	}

	guests, err = guestRepo.Find(ctx, "", "free gue")
	if err != nil {
		t.Fatalf("Failed to search guests: %v", err)
	}
	found := false
	for _, g := range guests {
		if g.ID == free.ID {
			found = true
		}
	}
	if !found {
		t.Error("Expected case-insensitive substring match to find guest")
	}
}

func TestPostgresStatsRepository_EventStats(t *testing.T) {
	skipIfNoIntegration(t)

	db := setupTestDB(t)
	defer db.Close()
	defer cleanupTestData(t, db)

	invRepo := NewPostgresInvitationRepository(db.Pool())
	attRepo := NewPostgresAttendanceRepository(db.Pool())
	statsRepo := NewPostgresStatsRepository(db.Pool())
	ctx := context.Background()

	event := mustCreateEvent(t, db, "test-stats")
	for i := 0; i < 3; i++ {
		guest := mustCreateGuest(t, db, "Guest", "test-089"+string(rune('0'+i))+"0000")
		inv, _ := domain.NewInvitation(event.ID, guest.ID, "test-token-stats-"+guest.ID)
		if err := invRepo.Create(ctx, inv); err != nil {
			t.Fatalf("Failed to create invitation: %v", err)
		}
		if i == 0 {
			att, _ := domain.NewAttendance(inv.ID)
			if err := attRepo.Create(ctx, att); err != nil {
				t.Fatalf("Failed to create attendance: %v", err)
			}
			if err := invRepo.UpdateRsvp(ctx, inv.ID, domain.RsvpStatusConfirmed); err != nil {
				t.Fatalf("Failed to update rsvp: %v", err)
			}
		}
	}

	stats, err := statsRepo.EventStats(ctx, event.ID)
	if err != nil {
		t.Fatalf("Failed to get stats: %v", err)
	}
	if stats.TotalGuests != 3 {
		t.Errorf("Expected 3 total guests, got %d", stats.TotalGuests)
	}
	if stats.CheckedInGuests != 1 {
		t.Errorf("Expected 1 checked in, got %d", stats.CheckedInGuests)
	}
	if stats.RsvpConfirmed != 1 || stats.RsvpPending != 2 {
		t.Errorf("Expected 1 confirmed / 2 pending, got %d / %d", stats.RsvpConfirmed, stats.RsvpPending)
	}
}
