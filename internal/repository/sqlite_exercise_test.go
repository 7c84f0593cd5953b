package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/alexanderramin/praxis/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedImport(t *testing.T, repo *SQLiteLibraryImportRepo, id string) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &domain.LibraryImport{
		ID:         id,
		Source:     "exercise_sample.json",
		ImportedAt: time.Now().UTC(),
	}))
}

func TestExerciseRepo_InsertAndList_PreservesOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	imports := NewSQLiteLibraryImportRepo(db)
	repo := NewSQLiteExerciseRepo(db)
	ctx := context.Background()
	seedImport(t, imports, "imp-1")

	recs := []domain.ExerciseRecord{
		testutil.NewTestExercise("Zercher Squat", testutil.WithMovementPattern("Squat"), testutil.WithGoal("Strength")),
		testutil.NewTestExercise("Achilles Iso", testutil.WithApplication("Clinical"), testutil.WithExtra("Sets", "3")),
		testutil.NewTestExercise("Mobility Flow", testutil.WithSkillLevel("Beginner")),
	}
	require.NoError(t, repo.Insert(ctx, "imp-1", recs))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, recs, got)
	assert.Equal(t, "3", got[1].Field("sets"))
}

func TestExerciseRepo_List_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteExerciseRepo(db)

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExerciseRepo_CountAndDeleteAll(t *testing.T) {
	db := testutil.NewTestDB(t)
	imports := NewSQLiteLibraryImportRepo(db)
	repo := NewSQLiteExerciseRepo(db)
	ctx := context.Background()
	seedImport(t, imports, "imp-1")

	require.NoError(t, repo.Insert(ctx, "imp-1", testutil.NewTestLibrary("ex", 4)))
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	require.NoError(t, repo.DeleteAll(ctx))
	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestExerciseRepo_Insert_UnknownImport(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteExerciseRepo(db)

	err := repo.Insert(context.Background(), "missing", testutil.NewTestLibrary("ex", 1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inserting exercise 0")
}
