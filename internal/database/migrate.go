package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// schema is applied in order inside a single transaction. Every statement is
// idempotent so Migrate can run on each boot.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS admins (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		name TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS membership_requests (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		reason TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'PENDING'
			CHECK (status IN ('PENDING', 'APPROVED', 'REJECTED')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_membership_requests_email_status
		ON membership_requests (email, status)`,
	`CREATE TABLE IF NOT EXISTS books (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title TEXT NOT NULL,
		author TEXT NOT NULL,
		description TEXT,
		image_url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS reviews (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		book_id UUID NOT NULL REFERENCES books(id) ON DELETE CASCADE,
		reviewer TEXT NOT NULL,
		rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
		comment TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'PENDING'
			CHECK (status IN ('PENDING', 'APPROVED', 'REJECTED')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reviews_book_id_status ON reviews (book_id, status)`,
}

// Migrate creates the tables the server needs if they are missing.
func (db *DB) Migrate(ctx context.Context) error {
	err := db.WithTx(ctx, func(tx *sqlx.Tx) error {
		for i, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("migration statement %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Int("statements", len(schema)).Msg("database schema up to date")
	return nil
}
