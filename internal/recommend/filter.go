package recommend

import (
	"strings"

	"github.com/alexanderramin/praxis/internal/domain"
)

// Predicate reports whether a library record suits the active selection.
type Predicate func(domain.ExerciseRecord) bool

// field returns the lower-cased value of a record field, "" when absent.
func field(r domain.ExerciseRecord, name string) string {
	return strings.ToLower(r.Field(name))
}

func fieldContains(r domain.ExerciseRecord, name string, needles ...string) bool {
	v := field(r, name)
	if v == "" {
		return false
	}
	for _, n := range needles {
		if strings.Contains(v, n) {
			return true
		}
	}
	return false
}

func clinicalMatch(r domain.ExerciseRecord) bool {
	return fieldContains(r, domain.FieldApplication, "clinical") ||
		fieldContains(r, domain.FieldPrimaryGoal, "rehab", "pain")
}

var trackFilters = map[domain.TrackID]Predicate{
	domain.TrackEndurance: func(r domain.ExerciseRecord) bool {
		return fieldContains(r, domain.FieldPrimaryGoal, "conditioning") ||
			fieldContains(r, domain.FieldApplication, "conditioning")
	},
	domain.TrackGeneral: func(r domain.ExerciseRecord) bool {
		return fieldContains(r, domain.FieldPrimaryGoal, "strength") ||
			field(r, domain.FieldMovementPattern) != ""
	},
	domain.TrackHybrid: func(r domain.ExerciseRecord) bool {
		return fieldContains(r, domain.FieldPrimaryGoal, "strength", "power", "conditioning")
	},
	domain.TrackLongevity: func(r domain.ExerciseRecord) bool {
		return fieldContains(r, domain.FieldPrimaryGoal, "mobility") ||
			fieldContains(r, domain.FieldSkillLevel, "beginner")
	},
}

// FilterFor returns the predicate for a selection. The boolean is false when
// the selection names no known filter, in which case the library is used
// unfiltered.
//
// Non-clinical paths filter on the chosen track, not the effective one: a
// mobility or longevity user still gets suggestions for the track they
// picked, even though their plan is forced to general or longevity.
func FilterFor(sel domain.Selection) (Predicate, bool) {
	if sel.Path.IsClinical() {
		return clinicalMatch, true
	}
	p, ok := trackFilters[sel.Track]
	return p, ok
}
