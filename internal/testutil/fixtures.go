package testutil

import (
	"fmt"

	"github.com/alexanderramin/praxis/internal/domain"
)

// Exercise options
type ExerciseOption func(*domain.ExerciseRecord)

func WithGoal(goal string) ExerciseOption {
	return func(r *domain.ExerciseRecord) {
		r.PrimaryGoal = goal
	}
}

func WithApplication(app string) ExerciseOption {
	return func(r *domain.ExerciseRecord) {
		r.Application = app
	}
}

func WithMovementPattern(p string) ExerciseOption {
	return func(r *domain.ExerciseRecord) {
		r.MovementPattern = p
	}
}

func WithSkillLevel(level string) ExerciseOption {
	return func(r *domain.ExerciseRecord) {
		r.SkillLevel = level
	}
}

func WithExtra(key, value string) ExerciseOption {
	return func(r *domain.ExerciseRecord) {
		if r.Extra == nil {
			r.Extra = make(map[string]string)
		}
		r.Extra[domain.FoldKey(key)] = value
	}
}

func NewTestExercise(name string, opts ...ExerciseOption) domain.ExerciseRecord {
	r := domain.ExerciseRecord{Name: name}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// NewTestLibrary builds n exercises named prefix-1..prefix-n sharing opts.
func NewTestLibrary(prefix string, n int, opts ...ExerciseOption) []domain.ExerciseRecord {
	recs := make([]domain.ExerciseRecord, n)
	for i := range recs {
		recs[i] = NewTestExercise(fmt.Sprintf("%s-%d", prefix, i+1), opts...)
	}
	return recs
}
