// Package migrations applies the database schema. Every statement is written
// to be idempotent so Apply can run at each startup.
package migrations

import (
	"context"
	"database/sql"
	"fmt"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id BIGSERIAL PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		role TEXT NOT NULL DEFAULT 'client',
		pfp_path TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS store_categories (
		category_id BIGSERIAL PRIMARY KEY,
		category_type TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS stores (
		store_id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(user_id),
		category_id BIGINT NOT NULL REFERENCES store_categories(category_id),
		name TEXT NOT NULL DEFAULT '',
		details TEXT NOT NULL DEFAULT '',
		contact TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		store_type TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'active',
		cover_photo TEXT,
		profile_picture TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS store_prices (
		price_id BIGSERIAL PRIMARY KEY,
		store_id BIGINT NOT NULL REFERENCES stores(store_id) ON DELETE CASCADE,
		title TEXT,
		min_price NUMERIC(12,2) NOT NULL DEFAULT 0,
		max_price NUMERIC(12,2) NOT NULL DEFAULT 0,
		description TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS venues (
		venue_id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(user_id),
		title TEXT NOT NULL DEFAULT '',
		owner_name TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		contact TEXT NOT NULL DEFAULT '',
		details TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'available',
		venue_type TEXT NOT NULL DEFAULT 'internal',
		profile_picture TEXT,
		cover_photo TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS venue_prices (
		price_id BIGSERIAL PRIMARY KEY,
		venue_id BIGINT NOT NULL REFERENCES venues(venue_id) ON DELETE CASCADE,
		title TEXT,
		min_price NUMERIC(12,2) NOT NULL DEFAULT 0,
		max_price NUMERIC(12,2) NOT NULL DEFAULT 0,
		capacity INTEGER NOT NULL DEFAULT 0,
		description TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_stores_user ON stores(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_store_prices_store ON store_prices(store_id)`,
	`CREATE INDEX IF NOT EXISTS idx_venues_user ON venues(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_venue_prices_venue ON venue_prices(venue_id)`,
	`INSERT INTO store_categories (category_type) VALUES
		('Catering'), ('Photography'), ('Decoration'), ('Music & Entertainment'), ('Florist')
		ON CONFLICT (category_type) DO NOTHING`,
}

// Apply executes every schema statement in order.
func Apply(ctx context.Context, db *sql.DB) error {
	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	return nil
}
