package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/praxis/internal/app"
	"github.com/alexanderramin/praxis/internal/cli/formatter"
	"github.com/alexanderramin/praxis/internal/domain"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// writeText prints rendered output, preceded by the safety disclaimer
// unless the user opted out.
func writeText(w io.Writer, opts outputOptions, text string) error {
	if !opts.noDisclaimer {
		if _, err := fmt.Fprintln(w, formatter.FormatDisclaimer()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprint(w, text)
	return err
}

// generateView is the JSON shape of a generated plan.
type generateView struct {
	GeneratedAt     time.Time               `json:"generatedAt"`
	TriagePath      domain.TriagePath       `json:"triagePath"`
	ConditionID     domain.ConditionID      `json:"conditionId,omitempty"`
	TrackID         domain.TrackID          `json:"trackId,omitempty"`
	Persona         string                  `json:"persona"`
	Notes           string                  `json:"notes"`
	Readiness       domain.ReadinessResult  `json:"readiness"`
	Plan            domain.Plan             `json:"plan"`
	Recommendations []domain.ExerciseRecord `json:"recommendations"`
	FallbackUsed    bool                    `json:"fallbackUsed"`
	Warnings        []string                `json:"warnings,omitempty"`
}

func newGenerateView(resp *app.GenerateResponse) generateView {
	v := generateView{
		GeneratedAt:     resp.GeneratedAt,
		TriagePath:      resp.Selection.Path,
		Persona:         resp.Persona,
		Notes:           resp.Notes,
		Readiness:       resp.Readiness,
		Plan:            resp.Plan,
		Recommendations: resp.Recommendations,
		FallbackUsed:    resp.FallbackUsed,
		Warnings:        resp.Warnings,
	}
	if resp.Selection.Path.IsClinical() {
		v.ConditionID = resp.Selection.Condition
	} else {
		v.TrackID = resp.Selection.EffectiveTrack()
	}
	if v.Recommendations == nil {
		v.Recommendations = []domain.ExerciseRecord{}
	}
	return v
}

type recommendView struct {
	Recommendations []domain.ExerciseRecord `json:"recommendations"`
	FallbackUsed    bool                    `json:"fallbackUsed"`
	Warnings        []string                `json:"warnings,omitempty"`
}
