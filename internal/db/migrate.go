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
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS storage_slots (
		name       TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS activity_log (
		id        TEXT PRIMARY KEY,
		kind      TEXT NOT NULL
		          CHECK(kind IN ('toggle_chapter','set_book','clear_all','import')),
		book      TEXT NOT NULL DEFAULT '',
		chapter   INTEGER NOT NULL DEFAULT 0,
		completed INTEGER NOT NULL DEFAULT 0,
		at        TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_activity_at ON activity_log(at)`,

	// Size of the progress mapping after the change; 0 for rows logged before it was tracked.
	`ALTER TABLE activity_log ADD COLUMN key_count INTEGER NOT NULL DEFAULT 0`,
}
