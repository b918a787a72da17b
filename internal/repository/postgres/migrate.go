package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied on startup. Statements are idempotent; the unique slug
// index and the (event_id, email) pair are the commit-time guards the
// services rely on.
var schema = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,
	`CREATE TABLE IF NOT EXISTS events (
		id          uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		title       text NOT NULL,
		slug        text NOT NULL UNIQUE,
		description text NOT NULL DEFAULT '',
		overview    text NOT NULL DEFAULT '',
		image       text NOT NULL DEFAULT '',
		venue       text NOT NULL DEFAULT '',
		location    text NOT NULL DEFAULT '',
		date        text NOT NULL,
		time        text NOT NULL,
		mode        text NOT NULL DEFAULT '',
		audience    text NOT NULL DEFAULT '',
		agenda      text[] NOT NULL,
		organizer   text NOT NULL DEFAULT '',
		tags        text[] NOT NULL,
		created_at  timestamptz NOT NULL DEFAULT now(),
		updated_at  timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_events_tags ON events USING gin (tags)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id         uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		event_id   uuid NOT NULL REFERENCES events(id) ON DELETE RESTRICT,
		email      text NOT NULL,
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now(),
		UNIQUE (event_id, email)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_event_id ON bookings (event_id)`,
}

// Migrate applies the schema statements in order.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
