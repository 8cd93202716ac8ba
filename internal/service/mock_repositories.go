package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/eznproject/undangan/internal/domain"
	"github.com/eznproject/undangan/internal/repository"
)

// MockStore is an in-memory stand-in for the postgres schema. One store backs
// all mock repositories so cross-table behavior (cascade delete, uniqueness,
// joins) matches what the real constraints enforce. All methods take the same
// mutex, which makes each operation atomic the way a single SQL statement is.
type MockStore struct {
	mu          sync.Mutex
	guests      map[string]*domain.Guest
	events      map[string]*domain.Event
	invitations map[string]*domain.Invitation
	attendances map[string]*domain.Attendance // keyed by invitation ID
	users       map[string]*domain.User
	sessions    map[string]string
}

// NewMockStore creates an empty in-memory store
func NewMockStore() *MockStore {
	return &MockStore{
		guests:      make(map[string]*domain.Guest),
		events:      make(map[string]*domain.Event),
		invitations: make(map[string]*domain.Invitation),
		attendances: make(map[string]*domain.Attendance),
		users:       make(map[string]*domain.User),
		sessions:    make(map[string]string),
	}
}

// Guests returns the guest repository view of the store
func (s *MockStore) Guests() repository.GuestRepository { return &mockGuestRepo{s} }

// Events returns the event repository view of the store
func (s *MockStore) Events() repository.EventRepository { return &mockEventRepo{s} }

// Invitations returns the invitation repository view of the store
func (s *MockStore) Invitations() repository.InvitationRepository { return &mockInvitationRepo{s} }

// Attendances returns the attendance repository view of the store
func (s *MockStore) Attendances() repository.AttendanceRepository { return &mockAttendanceRepo{s} }

// Stats returns the stats repository view of the store
func (s *MockStore) Stats() repository.StatsRepository { return &mockStatsRepo{s} }

// Users returns the user repository view of the store
func (s *MockStore) Users() repository.UserRepository { return &mockUserRepo{s} }

// Sessions returns the session repository view of the store
func (s *MockStore) Sessions() repository.SessionRepository { return &mockSessionRepo{s} }

type mockGuestRepo struct{ store *MockStore }

func (r *mockGuestRepo) Create(ctx context.Context, guest *domain.Guest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, g := range r.store.guests {
		if g.Whatsapp == guest.Whatsapp {
			return domain.ErrGuestContactExists
		}
	}
	copied := *guest
	r.store.guests[guest.ID] = &copied
	return nil
}

func (r *mockGuestRepo) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	g, ok := r.store.guests[id]
	if !ok {
		return nil, domain.ErrGuestNotFound
	}
	copied := *g
	return &copied, nil
}

func (r *mockGuestRepo) GetByWhatsapp(ctx context.Context, whatsapp string) (*domain.Guest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, g := range r.store.guests {
		if g.Whatsapp == whatsapp {
			copied := *g
			return &copied, nil
		}
	}
	return nil, domain.ErrGuestNotFound
}

func (r *mockGuestRepo) Update(ctx context.Context, guest *domain.Guest) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.guests[guest.ID]; !ok {
		return domain.ErrGuestNotFound
	}
	copied := *guest
	r.store.guests[guest.ID] = &copied
	return nil
}

func (r *mockGuestRepo) Find(ctx context.Context, excludeEventID, search string) ([]*domain.Guest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	invited := make(map[string]bool)
	if excludeEventID != "" {
		for _, inv := range r.store.invitations {
			if inv.EventID == excludeEventID {
				invited[inv.GuestID] = true
			}
		}
	}

	needle := strings.ToLower(search)
	guests := make([]*domain.Guest, 0)
	for _, g := range r.store.guests {
		if invited[g.ID] {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(g.Name), needle) &&
			!strings.Contains(strings.ToLower(g.Whatsapp), needle) &&
			!strings.Contains(strings.ToLower(g.Area), needle) {
			continue
		}
		copied := *g
		guests = append(guests, &copied)
	}
	sort.Slice(guests, func(i, j int) bool {
		return guests[i].CreatedAt.After(guests[j].CreatedAt)
	})
	return guests, nil
}

type mockEventRepo struct{ store *MockStore }

func (r *mockEventRepo) Create(ctx context.Context, event *domain.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *event
	r.store.events[event.ID] = &copied
	return nil
}

func (r *mockEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	e, ok := r.store.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *mockEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	events := make([]*domain.Event, 0, len(r.store.events))
	for _, e := range r.store.events {
		copied := *e
		events = append(events, &copied)
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})
	return events, nil
}

func (r *mockEventRepo) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.events[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(r.store.events, id)
	// Cascade: invitations and their attendance rows go, guests stay.
	for invID, inv := range r.store.invitations {
		if inv.EventID == id {
			delete(r.store.invitations, invID)
			delete(r.store.attendances, invID)
		}
	}
	return nil
}

type mockInvitationRepo struct{ store *MockStore }

func (r *mockInvitationRepo) Create(ctx context.Context, invitation *domain.Invitation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, inv := range r.store.invitations {
		if inv.EventID == invitation.EventID && inv.GuestID == invitation.GuestID {
			return domain.ErrDuplicateInvitation
		}
		if inv.Token == invitation.Token {
			return domain.ErrTokenConflict
		}
	}
	copied := *invitation
	r.store.invitations[invitation.ID] = &copied
	return nil
}

func (r *mockInvitationRepo) GetByID(ctx context.Context, id string) (*domain.Invitation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	inv, ok := r.store.invitations[id]
	if !ok {
		return nil, domain.ErrInvitationNotFound
	}
	copied := *inv
	return &copied, nil
}

func (r *mockInvitationRepo) GetByToken(ctx context.Context, token string) (*domain.Invitation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, inv := range r.store.invitations {
		if inv.Token == token {
			copied := *inv
			return &copied, nil
		}
	}
	return nil, domain.ErrInvitationNotFound
}

func (r *mockInvitationRepo) GetDetailByID(ctx context.Context, id string) (*repository.InvitationRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	inv, ok := r.store.invitations[id]
	if !ok {
		return nil, domain.ErrInvitationNotFound
	}
	return r.record(inv), nil
}

func (r *mockInvitationRepo) GetDetailByToken(ctx context.Context, token string) (*repository.InvitationRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, inv := range r.store.invitations {
		if inv.Token == token {
			return r.record(inv), nil
		}
	}
	return nil, domain.ErrInvitationNotFound
}

func (r *mockInvitationRepo) ListByEvent(ctx context.Context, eventID string) ([]*repository.InvitationRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	records := make([]*repository.InvitationRecord, 0)
	for _, inv := range r.store.invitations {
		if inv.EventID == eventID {
			records = append(records, r.record(inv))
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Invitation.CreatedAt.After(records[j].Invitation.CreatedAt)
	})
	return records, nil
}

func (r *mockInvitationRepo) UpdateRsvp(ctx context.Context, id, status string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	inv, ok := r.store.invitations[id]
	if !ok {
		return domain.ErrInvitationNotFound
	}
	inv.RsvpStatus = status
	inv.UpdatedAt = time.Now()
	return nil
}

func (r *mockInvitationRepo) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.invitations[id]; !ok {
		return domain.ErrInvitationNotFound
	}
	delete(r.store.invitations, id)
	delete(r.store.attendances, id)
	return nil
}

// record builds a joined view. Callers hold the store mutex.
func (r *mockInvitationRepo) record(inv *domain.Invitation) *repository.InvitationRecord {
	invCopy := *inv
	rec := &repository.InvitationRecord{Invitation: &invCopy}
	if g, ok := r.store.guests[inv.GuestID]; ok {
		gCopy := *g
		rec.Guest = &gCopy
	}
	if e, ok := r.store.events[inv.EventID]; ok {
		eCopy := *e
		rec.Event = &eCopy
	}
	if a, ok := r.store.attendances[inv.ID]; ok {
		aCopy := *a
		rec.Attendance = &aCopy
	}
	return rec
}

type mockAttendanceRepo struct{ store *MockStore }

func (r *mockAttendanceRepo) Create(ctx context.Context, attendance *domain.Attendance) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.attendances[attendance.InvitationID]; ok {
		return domain.ErrAlreadyCheckedIn
	}
	copied := *attendance
	r.store.attendances[attendance.InvitationID] = &copied
	return nil
}

func (r *mockAttendanceRepo) GetByInvitationID(ctx context.Context, invitationID string) (*domain.Attendance, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	a, ok := r.store.attendances[invitationID]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (r *mockAttendanceRepo) RecentCheckins(ctx context.Context, eventID string, limit int) ([]*repository.RecentCheckin, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	checkins := make([]*repository.RecentCheckin, 0)
	for invID, a := range r.store.attendances {
		inv, ok := r.store.invitations[invID]
		if !ok {
			continue
		}
		if eventID != "" && inv.EventID != eventID {
			continue
		}
		entry := &repository.RecentCheckin{
			InvitationID: invID,
			CheckinTime:  a.CheckinTime,
		}
		if g, ok := r.store.guests[inv.GuestID]; ok {
			entry.GuestName = g.Name
		}
		if e, ok := r.store.events[inv.EventID]; ok {
			entry.EventTitle = e.Title
		}
		checkins = append(checkins, entry)
	}
	sort.Slice(checkins, func(i, j int) bool {
		return checkins[i].CheckinTime.After(checkins[j].CheckinTime)
	})
	if limit > 0 && len(checkins) > limit {
		checkins = checkins[:limit]
	}
	return checkins, nil
}

type mockStatsRepo struct{ store *MockStore }

func (r *mockStatsRepo) EventStats(ctx context.Context, eventID string) (*repository.EventStats, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	stats := &repository.EventStats{}
	for invID, inv := range r.store.invitations {
		if eventID != "" && inv.EventID != eventID {
			continue
		}
		stats.TotalGuests++
		if _, ok := r.store.attendances[invID]; ok {
			stats.CheckedInGuests++
		}
		switch inv.RsvpStatus {
		case domain.RsvpStatusConfirmed:
			stats.RsvpConfirmed++
		case domain.RsvpStatusRejected:
			stats.RsvpRejected++
		default:
			stats.RsvpPending++
		}
	}
	return stats, nil
}

type mockUserRepo struct{ store *MockStore }

func (r *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if u.Username == user.Username {
			return domain.ErrUsernameExists
		}
	}
	copied := *user
	r.store.users[user.ID] = &copied
	return nil
}

func (r *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	u, ok := r.store.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type mockSessionRepo struct{ store *MockStore }

func (r *mockSessionRepo) Create(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.sessions[sessionID] = userID
	return nil
}

func (r *mockSessionRepo) Get(ctx context.Context, sessionID string) (string, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	userID, ok := r.store.sessions[sessionID]
	if !ok {
		return "", domain.ErrUserNotFound
	}
	return userID, nil
}

func (r *mockSessionRepo) Delete(ctx context.Context, sessionID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.sessions, sessionID)
	return nil
}
