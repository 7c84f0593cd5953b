package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/praxis/internal/db"
)

// NewTestDB opens a private in-memory catalog with the schema applied. It
// is closed when the test finishes.
func NewTestDB(t testing.TB) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("opening test catalog: %v", err)
	}
	t.Cleanup(func() {
		if err := database.Close(); err != nil {
			t.Errorf("closing test catalog: %v", err)
		}
	})
	return database
}

// NewTestUoW returns the production unit of work over database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
