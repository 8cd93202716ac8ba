package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eznproject/undangan/internal/domain"
)

// PostgresAttendanceRepository implements AttendanceRepository using PostgreSQL
type PostgresAttendanceRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAttendanceRepository creates a new PostgresAttendanceRepository
func NewPostgresAttendanceRepository(pool *pgxpool.Pool) *PostgresAttendanceRepository {
	return &PostgresAttendanceRepository{pool: pool}
}

// Create inserts a check-in row. The unique constraint on invitation_id is
// the atomicity boundary: a concurrent duplicate insert loses here and gets
// domain.ErrAlreadyCheckedIn, never a second row.
func (r *PostgresAttendanceRepository) Create(ctx context.Context, attendance *domain.Attendance) error {
	query := `
		INSERT INTO attendances (id, invitation_id, checkin_time, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		attendance.ID,
		attendance.InvitationID,
		attendance.CheckinTime,
		attendance.Status,
		attendance.CreatedAt,
	)
	if err != nil {
		if uniqueViolation(err) == constraintAttendanceInvitation {
			return domain.ErrAlreadyCheckedIn
		}
		return err
	}
	return nil
}

// GetByInvitationID retrieves the attendance row for an invitation, or nil
// when the invitation has not checked in
func (r *PostgresAttendanceRepository) GetByInvitationID(ctx context.Context, invitationID string) (*domain.Attendance, error) {
	query := `
		SELECT id, invitation_id, checkin_time, status, created_at
		FROM attendances
		WHERE invitation_id = $1
	`
	attendance := &domain.Attendance{}
	err := r.pool.QueryRow(ctx, query, invitationID).Scan(
		&attendance.ID,
		&attendance.InvitationID,
		&attendance.CheckinTime,
		&attendance.Status,
		&attendance.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return attendance, nil
}

// RecentCheckins lists the most recent check-ins with guest and event joined
func (r *PostgresAttendanceRepository) RecentCheckins(ctx context.Context, eventID string, limit int) ([]*RecentCheckin, error) {
	query := `
		SELECT a.invitation_id, g.name, e.title, a.checkin_time
		FROM attendances a
		JOIN invitations i ON i.id = a.invitation_id
		JOIN guests g ON g.id = i.guest_id
		JOIN events e ON e.id = i.event_id
	`
	args := []interface{}{}
	if eventID != "" {
		query += ` WHERE i.event_id = $1`
		args = append(args, eventID)
	}
	args = append(args, limit)
	if eventID != "" {
		query += ` ORDER BY a.checkin_time DESC LIMIT $2`
	} else {
		query += ` ORDER BY a.checkin_time DESC LIMIT $1`
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	checkins := make([]*RecentCheckin, 0)
	for rows.Next() {
		c := &RecentCheckin{}
		if err := rows.Scan(&c.InvitationID, &c.GuestName, &c.EventTitle, &c.CheckinTime); err != nil {
			return nil, err
		}
		checkins = append(checkins, c)
	}
	return checkins, rows.Err()
}
