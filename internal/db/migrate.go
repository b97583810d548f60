package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ... ADD COLUMN is re-run on every start.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Events keep their id split into lineage and token; several rows may
	// share an id, so neither column is unique. position preserves the
	// collection order.
	`CREATE TABLE IF NOT EXISTS events (
		position INTEGER NOT NULL,
		lineage  TEXT NOT NULL,
		token    TEXT NOT NULL DEFAULT '',
		title    TEXT NOT NULL,
		time     TEXT NOT NULL DEFAULT '',
		date     TEXT NOT NULL,
		type     TEXT NOT NULL DEFAULT 'other'
	)`,

	`CREATE INDEX IF NOT EXISTS idx_events_lineage ON events(lineage)`,
	`CREATE INDEX IF NOT EXISTS idx_events_date ON events(date)`,

	`CREATE TABLE IF NOT EXISTS goals (
		id       TEXT PRIMARY KEY,
		title    TEXT NOT NULL,
		position INTEGER NOT NULL DEFAULT 0
	)`,

	// Goal colours arrived after the first release.
	`ALTER TABLE goals ADD COLUMN color TEXT NOT NULL DEFAULT 'indigo'`,

	`CREATE TABLE IF NOT EXISTS goal_records (
		record_key TEXT PRIMARY KEY,
		done       INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
}
