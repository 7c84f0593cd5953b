package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/praxis/internal/app"
	"github.com/alexanderramin/praxis/internal/db"
	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/alexanderramin/praxis/internal/library"
	"github.com/alexanderramin/praxis/internal/repository"
	"github.com/google/uuid"
)

type libraryService struct {
	exercises repository.ExerciseRepo
	imports   repository.LibraryImportRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewLibraryService(
	exercises repository.ExerciseRepo,
	imports repository.LibraryImportRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) LibraryService {
	return &libraryService{
		exercises: exercises,
		imports:   imports,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// Import replaces the local catalog with the contents of filePath. The
// previous catalog survives any failure.
func (s *libraryService) Import(ctx context.Context, filePath string) (result *app.ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"source": filePath}
	defer func() { observe(ctx, s.observer, "import-library", startedAt, fields, err) }()

	var recs []domain.ExerciseRecord
	recs, err = library.LoadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading library file: %w", err)
	}
	if errs := library.ValidateRecords(recs); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	imp := &domain.LibraryImport{
		ID:         uuid.New().String(),
		Source:     filePath,
		RowCount:   len(recs),
		ImportedAt: startedAt,
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txExercises := repository.NewSQLiteExerciseRepo(tx)
		txImports := repository.NewSQLiteLibraryImportRepo(tx)

		if err := txExercises.DeleteAll(ctx); err != nil {
			return err
		}
		if err := txImports.DeleteAll(ctx); err != nil {
			return err
		}
		if err := txImports.Create(ctx, imp); err != nil {
			return err
		}
		return txExercises.Insert(ctx, imp.ID, recs)
	})
	if err != nil {
		return nil, &app.LibraryError{Code: app.LibraryErrInternal, Message: "storing library: " + err.Error(), Err: err}
	}

	fields["exercises"] = len(recs)
	return &app.ImportResult{Import: imp, ExerciseCount: len(recs)}, nil
}

func (s *libraryService) List(ctx context.Context) (*app.LibraryListing, error) {
	imp, err := s.imports.Latest(ctx)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	recs, err := s.exercises.List(ctx)
	if err != nil {
		return nil, err
	}
	return &app.LibraryListing{Import: imp, Exercises: recs}, nil
}

// Load reads the JSON file at path, or the local catalog when path is empty.
func (s *libraryService) Load(ctx context.Context, path string) ([]domain.ExerciseRecord, error) {
	if path != "" {
		return library.LoadFile(path)
	}
	return s.exercises.List(ctx)
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("library validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return &app.LibraryError{Code: app.LibraryErrInvalid, Message: msg}
}
