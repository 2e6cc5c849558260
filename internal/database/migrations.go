package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema.
// Each entity collection gets its own table keyed by a string id;
// nested values (labels, steps) are stored as JSON columns.
func runMigrations(ctx context.Context, db *sql.DB) error {
	// Create issues table
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS issues (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			step_id TEXT,
			release_id TEXT,
			labels TEXT,
			sort_order INTEGER
		)
	`)
	if err != nil {
		return err
	}

	// Indexes for the board's step and release lookups
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_issues_step
		ON issues(step_id)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_issues_release
		ON issues(release_id)
	`)
	if err != nil {
		return err
	}

	// Create journeys table; steps are owned by their journey and
	// persisted inline as a JSON array
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS journeys (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			steps TEXT NOT NULL DEFAULT '[]',
			sort_order INTEGER
		)
	`)
	if err != nil {
		return err
	}

	// Create releases table
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS releases (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT ''
		)
	`)
	return err
}
