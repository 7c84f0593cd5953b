package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A catalog created before extra_json existed keeps its rows and gains the
// column with its default.
func TestMigrate_UpgradePath_ExercisesWithoutExtra(t *testing.T) {
	db, err := sql.Open("sqlite", MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	legacy := []string{
		`CREATE TABLE library_imports (
			id          TEXT PRIMARY KEY,
			source      TEXT NOT NULL DEFAULT '',
			row_count   INTEGER NOT NULL DEFAULT 0,
			imported_at TEXT NOT NULL
		)`,
		`CREATE TABLE exercises (
			seq              INTEGER PRIMARY KEY AUTOINCREMENT,
			import_id        TEXT NOT NULL REFERENCES library_imports(id) ON DELETE CASCADE,
			name             TEXT NOT NULL DEFAULT '',
			movement_pattern TEXT NOT NULL DEFAULT '',
			pattern          TEXT NOT NULL DEFAULT '',
			primary_goal     TEXT NOT NULL DEFAULT '',
			application      TEXT NOT NULL DEFAULT '',
			skill_level      TEXT NOT NULL DEFAULT ''
		)`,
		`INSERT INTO library_imports (id, source, row_count, imported_at)
			VALUES ('legacy', 'old.json', 1, '2025-06-01T00:00:00Z')`,
		`INSERT INTO exercises (import_id, name, application) VALUES ('legacy', 'Calf Raise', 'Clinical')`,
	}
	for _, stmt := range legacy {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	require.NoError(t, Migrate(db))

	var name, app, extra string
	err = db.QueryRow(`SELECT name, application, extra_json FROM exercises WHERE import_id = 'legacy'`).
		Scan(&name, &app, &extra)
	require.NoError(t, err)
	assert.Equal(t, "Calf Raise", name)
	assert.Equal(t, "Clinical", app)
	assert.Equal(t, "{}", extra)
}
