package database

import (
	"context"
	"fmt"
)

// schemaLockID keys the advisory lock that serializes migrations when several
// instances start at once. CREATE TABLE IF NOT EXISTS alone can still race on
// the pg_type catalog.
const schemaLockID int64 = 7_340_118_202

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS admin_users (
		id            BIGSERIAL PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS sessions (
		token      TEXT PRIMARY KEY,
		user_id    BIGINT NOT NULL REFERENCES admin_users(id) ON DELETE CASCADE,
		expires_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions (expires_at)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id             BIGSERIAL PRIMARY KEY,
		reference      TEXT NOT NULL UNIQUE,
		service_slug   TEXT NOT NULL,
		date           DATE NOT NULL,
		adults         INTEGER NOT NULL CHECK (adults >= 1),
		children       INTEGER NOT NULL DEFAULT 0 CHECK (children >= 0),
		first_name     TEXT NOT NULL,
		last_name      TEXT NOT NULL,
		email          TEXT NOT NULL,
		phone          TEXT NOT NULL,
		observations   TEXT,
		discount_code  TEXT,
		is_gift        BOOLEAN NOT NULL DEFAULT FALSE,
		hotel          TEXT,
		payment_method TEXT NOT NULL DEFAULT 'card',
		total_price    NUMERIC(10,2) NOT NULL,
		status         TEXT NOT NULL DEFAULT 'pending',
		payment_status TEXT NOT NULL DEFAULT 'pending',
		payment_id     TEXT,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings (status)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_created_at ON bookings (created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS service_overrides (
		slug        TEXT PRIMARY KEY,
		price       NUMERIC(10,2),
		images_json JSONB,
		data_json   JSONB,
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Migrate creates the schema if it does not exist. Safe to call from every
// instance at startup.
func Migrate(ctx context.Context, db PgxIface) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, schemaLockID); err != nil {
		return fmt.Errorf("acquire migration lock: %w", err)
	}

	for _, stmt := range schemaStatements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}

	return nil
}
