package repository

import (
	"context"

	"github.com/alexanderramin/praxis/internal/domain"
)

type LibraryImportRepo interface {
	Create(ctx context.Context, imp *domain.LibraryImport) error
	Latest(ctx context.Context) (*domain.LibraryImport, error)
	DeleteAll(ctx context.Context) error
}

// ExerciseRepo stores the exercise catalog in library order.
type ExerciseRepo interface {
	Insert(ctx context.Context, importID string, recs []domain.ExerciseRecord) error
	List(ctx context.Context) ([]domain.ExerciseRecord, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
