package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent and the
// whole list re-runs on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE statements re-run against an already-migrated
			// database; tolerate the resulting duplicate column errors.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS activities (
		id         TEXT PRIMARY KEY,
		class_type TEXT NOT NULL,
		note       TEXT NOT NULL DEFAULT '',
		minutes    INTEGER NOT NULL DEFAULT 0,
		logged_at  TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_activities_logged_at ON activities(logged_at)`,

	`CREATE TABLE IF NOT EXISTS scheduled_classes (
		id         TEXT PRIMARY KEY,
		weekday    INTEGER NOT NULL CHECK(weekday BETWEEN 0 AND 6),
		class_name TEXT NOT NULL,
		class_type TEXT,
		start_time TEXT NOT NULL,
		end_time   TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_scheduled_classes_weekday ON scheduled_classes(weekday)`,

	`CREATE TABLE IF NOT EXISTS weekly_goal_targets (
		week_start TEXT NOT NULL,
		dimension  TEXT NOT NULL,
		target     INTEGER NOT NULL,
		created_at TEXT NOT NULL,
		PRIMARY KEY (week_start, dimension)
	)`,

	`CREATE TABLE IF NOT EXISTS reflections (
		id         TEXT PRIMARY KEY,
		day        TEXT NOT NULL UNIQUE,
		intention  TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
}
