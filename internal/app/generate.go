package app

import (
	"time"

	"github.com/alexanderramin/praxis/internal/domain"
)

// GenerateRequest carries raw user selections. Identifiers are parsed by
// the service; only the ones the triage path uses are checked.
type GenerateRequest struct {
	TriagePath string
	Condition  string
	Track      string
	Readiness  domain.ReadinessInputs
	Persona    string
	Notes      string
	// LibraryPath names a JSON library file. Empty reads the local catalog.
	LibraryPath string
}

// NewGenerateRequest returns the pre-filled check-in: clinical path,
// plantar fasciitis, endurance track, all ratings at 4.
func NewGenerateRequest() GenerateRequest {
	return GenerateRequest{
		TriagePath: string(domain.PathClinical),
		Condition:  string(domain.ConditionPlantarFasciitis),
		Track:      string(domain.TrackEndurance),
		Readiness:  domain.DefaultReadinessInputs(),
		Persona:    domain.DefaultPersona,
	}
}

type GenerateResponse struct {
	GeneratedAt     time.Time
	Selection       domain.Selection
	Persona         string
	Notes           string
	Readiness       domain.ReadinessResult
	Plan            domain.Plan
	Recommendations []domain.ExerciseRecord
	// FallbackUsed is set when too few exercises matched the selection and
	// the shortlist was taken from the whole library.
	FallbackUsed bool
	Warnings     []string
}

// InvalidIdentifierError reports an unknown triage path, condition, or track.
type InvalidIdentifierError = domain.InvalidIdentifierError
