package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/praxis/internal/db"
	"github.com/alexanderramin/praxis/internal/domain"
)

// SQLiteExerciseRepo implements ExerciseRepo using a SQLite database.
// Insertion order is preserved through the autoincrement seq column.
type SQLiteExerciseRepo struct {
	db db.DBTX
}

func NewSQLiteExerciseRepo(conn db.DBTX) *SQLiteExerciseRepo {
	return &SQLiteExerciseRepo{db: conn}
}

func (r *SQLiteExerciseRepo) Insert(ctx context.Context, importID string, recs []domain.ExerciseRecord) error {
	query := `INSERT INTO exercises (import_id, name, movement_pattern, pattern, primary_goal, application, skill_level, extra_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	for i, rec := range recs {
		extra, err := encodeExtra(rec.Extra)
		if err != nil {
			return fmt.Errorf("exercise %d: %w", i, err)
		}
		_, err = r.db.ExecContext(ctx, query,
			importID,
			rec.Name,
			rec.MovementPattern,
			rec.Pattern,
			rec.PrimaryGoal,
			rec.Application,
			rec.SkillLevel,
			extra,
		)
		if err != nil {
			return fmt.Errorf("inserting exercise %d (%s): %w", i, rec.Name, err)
		}
	}
	return nil
}

func (r *SQLiteExerciseRepo) List(ctx context.Context) ([]domain.ExerciseRecord, error) {
	query := `SELECT name, movement_pattern, pattern, primary_goal, application, skill_level, extra_json
		FROM exercises ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing exercises: %w", err)
	}
	defer rows.Close()

	recs := []domain.ExerciseRecord{}
	for rows.Next() {
		var rec domain.ExerciseRecord
		var extra string
		if err := rows.Scan(
			&rec.Name,
			&rec.MovementPattern,
			&rec.Pattern,
			&rec.PrimaryGoal,
			&rec.Application,
			&rec.SkillLevel,
			&extra,
		); err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		if rec.Extra, err = decodeExtra(extra); err != nil {
			return nil, fmt.Errorf("exercise %q: %w", rec.Name, err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating exercises: %w", err)
	}
	return recs, nil
}

func (r *SQLiteExerciseRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM exercises`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting exercises: %w", err)
	}
	return n, nil
}

func (r *SQLiteExerciseRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM exercises`); err != nil {
		return fmt.Errorf("deleting exercises: %w", err)
	}
	return nil
}
