// Package db opens the local SQLite exercise catalog and manages its schema
// and transactions.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory catalog.
const MemoryPath = ":memory:"

// Pragmas applied to every catalog connection, in order.
var pragmas = []struct {
	name, stmt string
}{
	{"enabling foreign keys", "PRAGMA foreign_keys = ON"},
	// An import holds the write lock briefly; readers wait instead of failing.
	{"setting busy timeout", "PRAGMA busy_timeout = 5000"},
	{"setting WAL mode", "PRAGMA journal_mode = WAL"},
}

// OpenDB opens the catalog at path, creating parent directories as needed,
// and brings the schema up to date.
func OpenDB(path string) (*sql.DB, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog %s: %w", path, err)
	}
	if path == MemoryPath {
		// Each connection to ":memory:" is a separate database.
		db.SetMaxOpenConns(1)
	}

	for _, p := range pragmas {
		if _, err := db.Exec(p.stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", p.name, err)
		}
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return db, nil
}
