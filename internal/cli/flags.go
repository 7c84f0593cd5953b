package cli

import (
	"fmt"

	"github.com/alexanderramin/praxis/internal/app"
	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	flagFormat       = "format"
	flagNoDisclaimer = "no-disclaimer"

	formatText = "text"
	formatJSON = "json"
)

// checkinFlags backs the selection and readiness flags shared by the
// plan-producing commands.
type checkinFlags struct {
	path      string
	condition string
	track     string
	readiness domain.ReadinessInputs
	persona   string
	notes     string
	library   string
}

func newCheckinFlags(d Defaults) *checkinFlags {
	req := app.NewGenerateRequest()
	return &checkinFlags{
		path:      req.TriagePath,
		condition: req.Condition,
		track:     req.Track,
		readiness: req.Readiness,
		persona:   domain.Coalesce(d.Persona, req.Persona),
		library:   d.LibraryPath,
	}
}

func (f *checkinFlags) registerReadiness(fs *pflag.FlagSet) {
	fs.Float64Var(&f.readiness.Sleep, "sleep", f.readiness.Sleep, "sleep quality last night (1-5)")
	fs.Float64Var(&f.readiness.Stress, "stress", f.readiness.Stress, "life stress now, 5 means low stress (1-5)")
	fs.Float64Var(&f.readiness.Energy, "energy", f.readiness.Energy, "energy level today (1-5)")
	fs.Float64Var(&f.readiness.Soreness, "soreness", f.readiness.Soreness, "muscle soreness, 5 means not sore (1-5)")
}

func (f *checkinFlags) registerSelection(fs *pflag.FlagSet) {
	fs.StringVar(&f.path, "path", f.path, "triage path: A clinical, B performance, C both, D mobility, E longevity")
	fs.StringVar(&f.condition, "condition", f.condition, "condition id for paths A and C (see praxis catalog)")
	fs.StringVar(&f.track, "track", f.track, "performance track for path B")
	fs.StringVar(&f.persona, "persona", f.persona, "coaching persona")
	fs.StringVar(&f.notes, "notes", f.notes, "free-text notes or context")
	fs.StringVar(&f.library, "library", f.library, "exercise library JSON file (default: imported catalog)")
}

func (f *checkinFlags) register(fs *pflag.FlagSet) {
	f.registerSelection(fs)
	f.registerReadiness(fs)
}

func (f *checkinFlags) request() app.GenerateRequest {
	return app.GenerateRequest{
		TriagePath:  f.path,
		Condition:   f.condition,
		Track:       f.track,
		Readiness:   f.readiness,
		Persona:     f.persona,
		Notes:       f.notes,
		LibraryPath: f.library,
	}
}

// canonicalize rewrites identifiers to their catalog spelling so the
// check-in form can preselect them. Unknown values are left as typed.
func (f *checkinFlags) canonicalize() {
	if p, err := domain.ParseTriagePath(f.path); err == nil {
		f.path = string(p)
	}
	if c, err := domain.ParseConditionID(f.condition); err == nil {
		f.condition = string(c)
	}
	if t, err := domain.ParseTrackID(f.track); err == nil {
		f.track = string(t)
	}
}

type outputOptions struct {
	json         bool
	noDisclaimer bool
}

// outputOf reads the root persistent output flags.
func outputOf(cmd *cobra.Command) (outputOptions, error) {
	format, err := cmd.Flags().GetString(flagFormat)
	if err != nil {
		return outputOptions{}, err
	}
	noDisclaimer, err := cmd.Flags().GetBool(flagNoDisclaimer)
	if err != nil {
		return outputOptions{}, err
	}
	switch format {
	case formatText, formatJSON:
	default:
		return outputOptions{}, fmt.Errorf("invalid --format %q (expected text or json)", format)
	}
	return outputOptions{json: format == formatJSON, noDisclaimer: noDisclaimer}, nil
}
