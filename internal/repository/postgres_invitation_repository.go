package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eznproject/undangan/internal/domain"
)

// PostgresInvitationRepository implements InvitationRepository using PostgreSQL
type PostgresInvitationRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresInvitationRepository creates a new PostgresInvitationRepository
func NewPostgresInvitationRepository(pool *pgxpool.Pool) *PostgresInvitationRepository {
	return &PostgresInvitationRepository{pool: pool}
}

// Create inserts a new invitation. Duplicate (event, guest) pairs and token
// collisions are rejected by the unique constraints, never by a prior read.
func (r *PostgresInvitationRepository) Create(ctx context.Context, invitation *domain.Invitation) error {
	query := `
		INSERT INTO invitations (id, event_id, guest_id, token, rsvp_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		invitation.ID,
		invitation.EventID,
		invitation.GuestID,
		invitation.Token,
		invitation.RsvpStatus,
		invitation.CreatedAt,
		invitation.UpdatedAt,
	)
	if err != nil {
		switch uniqueViolation(err) {
		case constraintInvitationEventGuest:
			return domain.ErrDuplicateInvitation
		case constraintInvitationToken:
			return domain.ErrTokenConflict
		}
		return err
	}
	return nil
}

// GetByID retrieves a bare invitation by ID
func (r *PostgresInvitationRepository) GetByID(ctx context.Context, id string) (*domain.Invitation, error) {
	query := `
		SELECT id, event_id, guest_id, token, rsvp_status, created_at, updated_at
		FROM invitations
		WHERE id = $1
	`
	return r.scanInvitation(r.pool.QueryRow(ctx, query, id))
}

// GetByToken retrieves a bare invitation by token
func (r *PostgresInvitationRepository) GetByToken(ctx context.Context, token string) (*domain.Invitation, error) {
	query := `
		SELECT id, event_id, guest_id, token, rsvp_status, created_at, updated_at
		FROM invitations
		WHERE token = $1
	`
	return r.scanInvitation(r.pool.QueryRow(ctx, query, token))
}

// GetDetailByID retrieves an invitation with guest, event, and attendance joined
func (r *PostgresInvitationRepository) GetDetailByID(ctx context.Context, id string) (*InvitationRecord, error) {
	return r.getDetail(ctx, "i.id = $1", id)
}

// GetDetailByToken retrieves an invitation with guest, event, and attendance joined
func (r *PostgresInvitationRepository) GetDetailByToken(ctx context.Context, token string) (*InvitationRecord, error) {
	return r.getDetail(ctx, "i.token = $1", token)
}

func (r *PostgresInvitationRepository) getDetail(ctx context.Context, where string, arg interface{}) (*InvitationRecord, error) {
	query := `
		SELECT i.id, i.event_id, i.guest_id, i.token, i.rsvp_status, i.created_at, i.updated_at,
		       g.id, g.name, g.whatsapp, g.address, g.area, g.created_at, g.updated_at,
		       e.id, e.title, e.date, e.time, e.location, e.description, e.created_at, e.updated_at,
		       a.id, a.checkin_time, a.status, a.created_at
		FROM invitations i
		JOIN guests g ON g.id = i.guest_id
		JOIN events e ON e.id = i.event_id
		LEFT JOIN attendances a ON a.invitation_id = i.id
		WHERE ` + where

	record, err := scanInvitationRecord(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, err
	}
	return record, nil
}

// ListByEvent retrieves all invitations for an event with guest and
// attendance joined, newest first
func (r *PostgresInvitationRepository) ListByEvent(ctx context.Context, eventID string) ([]*InvitationRecord, error) {
	query := `
		SELECT i.id, i.event_id, i.guest_id, i.token, i.rsvp_status, i.created_at, i.updated_at,
		       g.id, g.name, g.whatsapp, g.address, g.area, g.created_at, g.updated_at,
		       e.id, e.title, e.date, e.time, e.location, e.description, e.created_at, e.updated_at,
		       a.id, a.checkin_time, a.status, a.created_at
		FROM invitations i
		JOIN guests g ON g.id = i.guest_id
		JOIN events e ON e.id = i.event_id
		LEFT JOIN attendances a ON a.invitation_id = i.id
		WHERE i.event_id = $1
		ORDER BY i.created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*InvitationRecord, 0)
	for rows.Next() {
		record, err := scanInvitationRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// UpdateRsvp overwrites the RSVP status
func (r *PostgresInvitationRepository) UpdateRsvp(ctx context.Context, id, status string) error {
	query := `UPDATE invitations SET rsvp_status = $2, updated_at = $3 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvitationNotFound
	}
	return nil
}

// Delete removes an invitation; its attendance cascades at the storage layer
func (r *PostgresInvitationRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM invitations WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvitationNotFound
	}
	return nil
}

func (r *PostgresInvitationRepository) scanInvitation(row pgx.Row) (*domain.Invitation, error) {
	invitation := &domain.Invitation{}
	err := row.Scan(
		&invitation.ID,
		&invitation.EventID,
		&invitation.GuestID,
		&invitation.Token,
		&invitation.RsvpStatus,
		&invitation.CreatedAt,
		&invitation.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, err
	}
	return invitation, nil
}

func scanInvitationRecord(row pgx.Row) (*InvitationRecord, error) {
	invitation := &domain.Invitation{}
	guest := &domain.Guest{}
	event := &domain.Event{}
	var attID, attStatus *string
	var attCheckin, attCreated *time.Time

	err := row.Scan(
		&invitation.ID, &invitation.EventID, &invitation.GuestID, &invitation.Token,
		&invitation.RsvpStatus, &invitation.CreatedAt, &invitation.UpdatedAt,
		&guest.ID, &guest.Name, &guest.Whatsapp, &guest.Address, &guest.Area,
		&guest.CreatedAt, &guest.UpdatedAt,
		&event.ID, &event.Title, &event.Date, &event.Time, &event.Location,
		&event.Description, &event.CreatedAt, &event.UpdatedAt,
		&attID, &attCheckin, &attStatus, &attCreated,
	)
	if err != nil {
		return nil, err
	}

	record := &InvitationRecord{
		Invitation: invitation,
		Guest:      guest,
		Event:      event,
	}
	if attID != nil {
		record.Attendance = &domain.Attendance{
			ID:           *attID,
			InvitationID: invitation.ID,
			CheckinTime:  *attCheckin,
			Status:       *attStatus,
			CreatedAt:    *attCreated,
		}
	}
	return record, nil
}
