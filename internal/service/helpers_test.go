package service

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/praxis/internal/db"
	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/alexanderramin/praxis/internal/planner"
	"github.com/alexanderramin/praxis/internal/repository"
	"github.com/alexanderramin/praxis/internal/testutil"
	"github.com/stretchr/testify/require"
)

// staticLibrary is a LibraryLoader returning fixed rows or a fixed error.
type staticLibrary struct {
	recs []domain.ExerciseRecord
	err  error
	// paths records every path passed to Load.
	paths []string
}

func (l *staticLibrary) Load(_ context.Context, path string) ([]domain.ExerciseRecord, error) {
	l.paths = append(l.paths, path)
	return l.recs, l.err
}

// recordingObserver keeps every event it receives.
type recordingObserver struct {
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.events = append(o.events, e)
}

func newTestPlanService(t *testing.T, lib LibraryLoader, observers ...UseCaseObserver) PlanService {
	t.Helper()
	catalog, err := planner.DefaultCatalog()
	require.NoError(t, err)
	return NewPlanService(planner.NewBuilder(catalog), lib, observers...)
}

func newTestLibraryService(t *testing.T, uow db.UnitOfWork) (LibraryService, *repository.SQLiteExerciseRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	if uow == nil {
		uow = testutil.NewTestUoW(database)
	} else if f, ok := uow.(*testutil.FailOnNthExecUoW); ok {
		f.DB = database
	}
	exercises := repository.NewSQLiteExerciseRepo(database)
	return NewLibraryService(exercises, repository.NewSQLiteLibraryImportRepo(database), uow), exercises
}

// writeLibraryFile writes rows as a JSON library and returns its path.
func writeLibraryFile(t *testing.T, rows []map[string]any) string {
	t.Helper()
	data, err := json.Marshal(rows)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "exercise_sample.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func clinicalRows(n int) []map[string]any {
	rows := make([]map[string]any, n)
	for i := range rows {
		rows[i] = map[string]any{"ExerciseName": "Clinical " + string(rune('A'+i)), "Application": "Clinical"}
	}
	return rows
}
