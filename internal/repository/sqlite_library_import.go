package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/praxis/internal/db"
	"github.com/alexanderramin/praxis/internal/domain"
)

// SQLiteLibraryImportRepo implements LibraryImportRepo using a SQLite database.
type SQLiteLibraryImportRepo struct {
	db db.DBTX
}

func NewSQLiteLibraryImportRepo(conn db.DBTX) *SQLiteLibraryImportRepo {
	return &SQLiteLibraryImportRepo{db: conn}
}

func (r *SQLiteLibraryImportRepo) Create(ctx context.Context, imp *domain.LibraryImport) error {
	query := `INSERT INTO library_imports (id, source, row_count, imported_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		imp.ID,
		imp.Source,
		imp.RowCount,
		imp.ImportedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting library import: %w", err)
	}
	return nil
}

func (r *SQLiteLibraryImportRepo) Latest(ctx context.Context) (*domain.LibraryImport, error) {
	query := `SELECT id, source, row_count, imported_at FROM library_imports
		ORDER BY imported_at DESC, rowid DESC LIMIT 1`

	var imp domain.LibraryImport
	var importedAt string
	err := r.db.QueryRowContext(ctx, query).Scan(&imp.ID, &imp.Source, &imp.RowCount, &importedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("library import: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning library import: %w", err)
	}
	imp.ImportedAt = parseTime(importedAt)
	return &imp, nil
}

func (r *SQLiteLibraryImportRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM library_imports`); err != nil {
		return fmt.Errorf("deleting library imports: %w", err)
	}
	return nil
}
