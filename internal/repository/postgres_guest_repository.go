package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eznproject/undangan/internal/domain"
)

// PostgresGuestRepository implements GuestRepository using PostgreSQL
type PostgresGuestRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresGuestRepository creates a new PostgresGuestRepository
func NewPostgresGuestRepository(pool *pgxpool.Pool) *PostgresGuestRepository {
	return &PostgresGuestRepository{pool: pool}
}

// Create inserts a new guest
func (r *PostgresGuestRepository) Create(ctx context.Context, guest *domain.Guest) error {
	query := `
		INSERT INTO guests (id, name, whatsapp, address, area, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		guest.ID,
		guest.Name,
		guest.Whatsapp,
		guest.Address,
		guest.Area,
		guest.CreatedAt,
		guest.UpdatedAt,
	)
	if err != nil {
		if uniqueViolation(err) == constraintGuestWhatsapp {
			return domain.ErrGuestContactExists
		}
		return err
	}
	return nil
}

// GetByID retrieves a guest by ID
func (r *PostgresGuestRepository) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	query := `
		SELECT id, name, whatsapp, address, area, created_at, updated_at
		FROM guests
		WHERE id = $1
	`
	return r.scanGuest(r.pool.QueryRow(ctx, query, id))
}

// GetByWhatsapp retrieves a guest by exact whatsapp number
func (r *PostgresGuestRepository) GetByWhatsapp(ctx context.Context, whatsapp string) (*domain.Guest, error) {
	query := `
		SELECT id, name, whatsapp, address, area, created_at, updated_at
		FROM guests
		WHERE whatsapp = $1
	`
	return r.scanGuest(r.pool.QueryRow(ctx, query, whatsapp))
}

// Update persists changed guest fields
func (r *PostgresGuestRepository) Update(ctx context.Context, guest *domain.Guest) error {
	query := `
		UPDATE guests
		SET name = $2, address = $3, area = $4, updated_at = $5
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		guest.ID,
		guest.Name,
		guest.Address,
		guest.Area,
		guest.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGuestNotFound
	}
	return nil
}

// Find lists guests, newest first, optionally excluding guests already
// invited to an event and filtering by a case-insensitive substring match
func (r *PostgresGuestRepository) Find(ctx context.Context, excludeEventID, search string) ([]*domain.Guest, error) {
	query := `
		SELECT id, name, whatsapp, address, area, created_at, updated_at
		FROM guests
		WHERE 1=1
	`
	args := []interface{}{}

	if excludeEventID != "" {
		args = append(args, excludeEventID)
		query += fmt.Sprintf(` AND id NOT IN (
			SELECT guest_id FROM invitations WHERE event_id = $%d
		)`, len(args))
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		query += fmt.Sprintf(` AND (name ILIKE $%d OR whatsapp ILIKE $%d OR area ILIKE $%d)`,
			len(args), len(args), len(args))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	guests := make([]*domain.Guest, 0)
	for rows.Next() {
		guest := &domain.Guest{}
		if err := rows.Scan(
			&guest.ID,
			&guest.Name,
			&guest.Whatsapp,
			&guest.Address,
			&guest.Area,
			&guest.CreatedAt,
			&guest.UpdatedAt,
		); err != nil {
			return nil, err
		}
		guests = append(guests, guest)
	}
	return guests, rows.Err()
}

func (r *PostgresGuestRepository) scanGuest(row pgx.Row) (*domain.Guest, error) {
	guest := &domain.Guest{}
	err := row.Scan(
		&guest.ID,
		&guest.Name,
		&guest.Whatsapp,
		&guest.Address,
		&guest.Area,
		&guest.CreatedAt,
		&guest.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGuestNotFound
		}
		return nil, err
	}
	return guest, nil
}
