package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStatsRepository implements StatsRepository using PostgreSQL
type PostgresStatsRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresStatsRepository creates a new PostgresStatsRepository
func NewPostgresStatsRepository(pool *pgxpool.Pool) *PostgresStatsRepository {
	return &PostgresStatsRepository{pool: pool}
}

// EventStats counts invitations, check-ins, and the RSVP split in a single
// aggregate query. An empty eventID aggregates across all events.
func (r *PostgresStatsRepository) EventStats(ctx context.Context, eventID string) (*EventStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(a.id),
			COUNT(*) FILTER (WHERE i.rsvp_status = 'confirmed'),
			COUNT(*) FILTER (WHERE i.rsvp_status = 'pending'),
			COUNT(*) FILTER (WHERE i.rsvp_status = 'rejected')
		FROM invitations i
		LEFT JOIN attendances a ON a.invitation_id = i.id
		WHERE ($1 = '' OR i.event_id::text = $1)
	`
	stats := &EventStats{}
	err := r.pool.QueryRow(ctx, query, eventID).Scan(
		&stats.TotalGuests,
		&stats.CheckedInGuests,
		&stats.RsvpConfirmed,
		&stats.RsvpPending,
		&stats.RsvpRejected,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
