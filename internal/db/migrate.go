package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
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

// Dates are stored as YYYY-MM-DD text in UTC; timestamps as RFC 3339.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		start_date  TEXT NOT NULL,
		end_date    TEXT,
		status      TEXT NOT NULL DEFAULT 'active'
		            CHECK(status IN ('active','on_hold','completed','archived')),
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	// Job numbers were added after the first deployments.
	`ALTER TABLE projects ADD COLUMN job_number TEXT`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_projects_job_number
		ON projects(job_number) WHERE job_number IS NOT NULL AND job_number != ''`,

	`CREATE TABLE IF NOT EXISTS categories (
		id          TEXT PRIMARY KEY,
		project_id  TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		sort_order  INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_categories_project ON categories(project_id)`,

	`CREATE TABLE IF NOT EXISTS activities (
		id              TEXT PRIMARY KEY,
		category_id     TEXT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
		name            TEXT NOT NULL,
		cost_code       TEXT NOT NULL DEFAULT '',
		sort_order      INTEGER NOT NULL DEFAULT 0,
		estimated_hours INTEGER,
		notes           TEXT NOT NULL DEFAULT '',
		completed       INTEGER NOT NULL DEFAULT 0,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_activities_category ON activities(category_id)`,

	`CREATE TABLE IF NOT EXISTS manpower (
		id          TEXT PRIMARY KEY,
		activity_id TEXT NOT NULL REFERENCES activities(id) ON DELETE CASCADE,
		date        TEXT NOT NULL,
		headcount   INTEGER NOT NULL CHECK(headcount >= 0),
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_manpower_activity ON manpower(activity_id)`,
	`CREATE INDEX IF NOT EXISTS idx_manpower_date ON manpower(date)`,
}
