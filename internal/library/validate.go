package library

import (
	"fmt"

	"github.com/alexanderramin/praxis/internal/domain"
)

// ValidateRecords checks a library before it is stored in the catalog.
// Returns a slice of all validation errors found.
func ValidateRecords(recs []domain.ExerciseRecord) []error {
	var errs []error

	if len(recs) == 0 {
		return []error{fmt.Errorf("library contains no exercise rows")}
	}

	for i, r := range recs {
		if r.Name == "" {
			errs = append(errs, fmt.Errorf("row[%d]: ExerciseName or name is required", i))
		}
	}

	return errs
}
