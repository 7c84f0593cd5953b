// Package export writes and reads plan bundles: a flat JSON document holding
// one generated plan with the selection and check-in that produced it.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/google/uuid"
)

// DefaultFileName is used when no output path is given.
const DefaultFileName = "clinical_demo_plan.json"

type Bundle struct {
	ID          string                 `json:"id"`
	GeneratedAt time.Time              `json:"generatedAt"`
	TriagePath  domain.TriagePath      `json:"triagePath"`
	ConditionID domain.ConditionID     `json:"conditionId,omitempty"`
	TrackID     domain.TrackID         `json:"trackId,omitempty"`
	Persona     string                 `json:"persona"`
	Notes       string                 `json:"notes"`
	Readiness   domain.ReadinessResult `json:"readiness"`
	Plan        domain.Plan            `json:"plan"`
}

// NewBundle stamps a plan with a fresh id. Clinical paths record the
// condition; the rest record the effective track.
func NewBundle(sel domain.Selection, persona, notes string, plan domain.Plan, generatedAt time.Time) *Bundle {
	b := &Bundle{
		ID:          uuid.New().String(),
		GeneratedAt: generatedAt.UTC(),
		TriagePath:  sel.Path,
		Persona:     persona,
		Notes:       notes,
		Readiness:   plan.Readiness,
		Plan:        plan,
	}
	if sel.Path.IsClinical() {
		b.ConditionID = sel.Condition
	} else {
		b.TrackID = sel.EffectiveTrack()
	}
	return b
}

// Selection reconstructs the choice the bundle was generated from.
func (b *Bundle) Selection() domain.Selection {
	return domain.Selection{Path: b.TriagePath, Condition: b.ConditionID, Track: b.TrackID}
}

func Encode(w io.Writer, b *Bundle) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("encoding bundle: %w", err)
	}
	return nil
}

// Decode parses a bundle and checks that it names a known selection and
// carries a plan.
func Decode(r io.Reader) (*Bundle, error) {
	var b Bundle
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return nil, fmt.Errorf("decoding bundle: %w", err)
	}
	if err := b.Selection().Validate(); err != nil {
		return nil, fmt.Errorf("decoding bundle: %w", err)
	}
	if b.Plan.Headline == "" || len(b.Plan.Phases) == 0 {
		return nil, errors.New("decoding bundle: plan is missing its headline or phases")
	}
	return &b, nil
}

func WriteFile(path string, b *Bundle) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	return Encode(f, b)
}

func ReadFile(path string) (*Bundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}
