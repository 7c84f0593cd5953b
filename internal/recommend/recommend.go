// Package recommend shortlists exercises from the reference library for the
// active triage path or performance track.
package recommend

import "github.com/alexanderramin/praxis/internal/domain"

const (
	// MinMatches is the smallest filtered set shown; below it the whole
	// library is used instead.
	MinMatches = 6
	// Limit caps the number of recommendations.
	Limit = 10
)

// Recommend filters the library for the selection and returns at most Limit
// records in library order. The library slice is never modified.
func Recommend(library []domain.ExerciseRecord, sel domain.Selection) []domain.ExerciseRecord {
	if len(library) == 0 {
		return []domain.ExerciseRecord{}
	}

	candidates := library
	if match, ok := FilterFor(sel); ok {
		filtered := make([]domain.ExerciseRecord, 0, len(library))
		for _, r := range library {
			if match(r) {
				filtered = append(filtered, r)
			}
		}
		if len(filtered) >= MinMatches {
			candidates = filtered
		}
	}

	n := min(len(candidates), Limit)
	out := make([]domain.ExerciseRecord, n)
	copy(out, candidates[:n])
	return out
}

// Matches counts the library records the selection's filter accepts, before
// the fallback applies.
func Matches(library []domain.ExerciseRecord, sel domain.Selection) int {
	match, ok := FilterFor(sel)
	if !ok {
		return len(library)
	}
	n := 0
	for _, r := range library {
		if match(r) {
			n++
		}
	}
	return n
}
