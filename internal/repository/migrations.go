package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Constraint names referenced by the unique-violation translation in the
// Postgres repositories.
const (
	constraintGuestWhatsapp        = "guests_whatsapp_key"
	constraintInvitationToken      = "invitations_token_key"
	constraintInvitationEventGuest = "invitations_event_guest_key"
	constraintAttendanceInvitation = "attendances_invitation_key"
	constraintUserUsername         = "users_username_key"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS guests (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		whatsapp TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		area TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT guests_whatsapp_key UNIQUE (whatsapp)
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		date TEXT NOT NULL,
		time TEXT NOT NULL,
		location TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS invitations (
		id UUID PRIMARY KEY,
		event_id UUID NOT NULL REFERENCES events(id) ON DELETE CASCADE,
		guest_id UUID NOT NULL REFERENCES guests(id),
		token TEXT NOT NULL,
		rsvp_status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT invitations_token_key UNIQUE (token),
		CONSTRAINT invitations_event_guest_key UNIQUE (event_id, guest_id)
	)`,
	`CREATE TABLE IF NOT EXISTS attendances (
		id UUID PRIMARY KEY,
		invitation_id UUID NOT NULL REFERENCES invitations(id) ON DELETE CASCADE,
		checkin_time TIMESTAMPTZ NOT NULL,
		status TEXT NOT NULL DEFAULT 'checked_in',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT attendances_invitation_key UNIQUE (invitation_id)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT users_username_key UNIQUE (username)
	)`,
	`CREATE TABLE IF NOT EXISTS audit_logs (
			id UUID PRIMARY KEY,
			user_id UUID,
			username TEXT NOT NULL DEFAULT '',
			action TEXT NOT NULL,
			resource_type TEXT NOT NULL DEFAULT '',
			resource_id UUID,
			ip_address TEXT NOT NULL DEFAULT '',
			user_agent TEXT NOT NULL DEFAULT '',
			request_id TEXT NOT NULL DEFAULT '',
			status_code INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	`CREATE INDEX IF NOT EXISTS idx_invitations_event_id ON invitations (event_id)`,
	`CREATE INDEX IF NOT EXISTS idx_invitations_guest_id ON invitations (guest_id)`,
	`CREATE INDEX IF NOT EXISTS idx_attendances_checkin_time ON attendances (checkin_time DESC)`,
}

// Migrate bootstraps the schema. Every uniqueness rule lives here as a
// storage-level constraint; application code only translates violations.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for i, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}
	return nil
}
