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
			// ALTER TABLE statements re-run on every open.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS library_imports (
		id          TEXT PRIMARY KEY,
		source      TEXT NOT NULL DEFAULT '',
		row_count   INTEGER NOT NULL DEFAULT 0,
		imported_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS exercises (
		seq              INTEGER PRIMARY KEY AUTOINCREMENT,
		import_id        TEXT NOT NULL REFERENCES library_imports(id) ON DELETE CASCADE,
		name             TEXT NOT NULL DEFAULT '',
		movement_pattern TEXT NOT NULL DEFAULT '',
		pattern          TEXT NOT NULL DEFAULT '',
		primary_goal     TEXT NOT NULL DEFAULT '',
		application      TEXT NOT NULL DEFAULT '',
		skill_level      TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_exercises_import ON exercises(import_id)`,

	// Unrecognised library columns, stored as a JSON object of folded keys.
	`ALTER TABLE exercises ADD COLUMN extra_json TEXT NOT NULL DEFAULT '{}'`,
}
