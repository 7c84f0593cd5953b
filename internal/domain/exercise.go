package domain

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Canonical field names of a library row. Source data spells these with
// inconsistent casing, so every lookup goes through FoldKey.
const (
	FieldExerciseName    = "ExerciseName"
	FieldName            = "Name"
	FieldMovementPattern = "MovementPattern"
	FieldPattern         = "Pattern"
	FieldPrimaryGoal     = "PrimaryGoal"
	FieldApplication     = "Application"
	FieldSkillLevel      = "SkillLevel"
)

// ExerciseRecord is one row of the reference exercise library. All fields
// are optional; unknown columns are kept in Extra under folded keys.
type ExerciseRecord struct {
	Name            string            `json:"ExerciseName,omitempty"`
	MovementPattern string            `json:"MovementPattern,omitempty"`
	Pattern         string            `json:"Pattern,omitempty"`
	PrimaryGoal     string            `json:"PrimaryGoal,omitempty"`
	Application     string            `json:"Application,omitempty"`
	SkillLevel      string            `json:"SkillLevel,omitempty"`
	Extra           map[string]string `json:"Extra,omitempty"`
}

// FoldKey case-folds a field name for comparison.
func FoldKey(name string) string {
	return cases.Fold().String(name)
}

var (
	foldedExerciseName    = FoldKey(FieldExerciseName)
	foldedName            = FoldKey(FieldName)
	foldedMovementPattern = FoldKey(FieldMovementPattern)
	foldedPattern         = FoldKey(FieldPattern)
	foldedPrimaryGoal     = FoldKey(FieldPrimaryGoal)
	foldedApplication     = FoldKey(FieldApplication)
	foldedSkillLevel      = FoldKey(FieldSkillLevel)
)

var canonicalSpelling = map[string]string{
	foldedExerciseName:    FieldExerciseName,
	foldedName:            FieldName,
	foldedMovementPattern: FieldMovementPattern,
	foldedPattern:         FieldPattern,
	foldedPrimaryGoal:     FieldPrimaryGoal,
	foldedApplication:     FieldApplication,
	foldedSkillLevel:      FieldSkillLevel,
}

// keyRank orders spellings of the same field: the canonical spelling
// first, then all-lowercase, then anything else.
func keyRank(key string) int {
	switch {
	case key == canonicalSpelling[FoldKey(key)]:
		return 0
	case key == strings.ToLower(key):
		return 1
	default:
		return 2
	}
}

// orderedKeys returns the keys of fields in precedence order, so the first
// non-empty spelling of a field wins regardless of map iteration order.
func orderedKeys(fields map[string]string) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		return cmp.Or(cmp.Compare(keyRank(a), keyRank(b)), strings.Compare(a, b))
	})
	return keys
}

// ExerciseFromFields builds a record from loosely keyed columns. Keys are
// matched case-insensitively; ExerciseName wins over Name. When a field is
// spelled several ways, the exact spelling beats the lowercase one, and
// other spellings follow in sorted order.
func ExerciseFromFields(fields map[string]string) ExerciseRecord {
	var rec ExerciseRecord
	var name, exerciseName string
	for _, k := range orderedKeys(fields) {
		v := fields[k]
		switch fk := FoldKey(k); fk {
		case foldedExerciseName:
			exerciseName = Coalesce(exerciseName, v)
		case foldedName:
			name = Coalesce(name, v)
		case foldedMovementPattern:
			rec.MovementPattern = Coalesce(rec.MovementPattern, v)
		case foldedPattern:
			rec.Pattern = Coalesce(rec.Pattern, v)
		case foldedPrimaryGoal:
			rec.PrimaryGoal = Coalesce(rec.PrimaryGoal, v)
		case foldedApplication:
			rec.Application = Coalesce(rec.Application, v)
		case foldedSkillLevel:
			rec.SkillLevel = Coalesce(rec.SkillLevel, v)
		default:
			if v == "" || rec.Extra[fk] != "" {
				continue
			}
			if rec.Extra == nil {
				rec.Extra = make(map[string]string)
			}
			rec.Extra[fk] = v
		}
	}
	rec.Name = Coalesce(exerciseName, name)
	return rec
}

// Field returns the value stored under name, matched case-insensitively,
// or "" when the record has no such field.
func (r ExerciseRecord) Field(name string) string {
	switch key := FoldKey(name); key {
	case foldedExerciseName, foldedName:
		return r.Name
	case foldedMovementPattern:
		return r.MovementPattern
	case foldedPattern:
		return r.Pattern
	case foldedPrimaryGoal:
		return r.PrimaryGoal
	case foldedApplication:
		return r.Application
	case foldedSkillLevel:
		return r.SkillLevel
	default:
		return r.Extra[key]
	}
}

// DisplayPattern prefers MovementPattern and falls back to Pattern.
func (r ExerciseRecord) DisplayPattern() string {
	return Coalesce(r.MovementPattern, r.Pattern)
}
