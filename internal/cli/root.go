package cli

import (
	"time"

	"github.com/alexanderramin/praxis/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plans   service.PlanService
	Library service.LibraryService
	Exports service.ExportService

	// Defaults seeds flag defaults, normally from the loaded config.
	Defaults Defaults

	// IsInteractive reports whether prompts may be shown. Nil means never.
	IsInteractive func() bool

	// Now overrides the clock used for relative dates.
	Now func() time.Time
}

// Defaults are the config-provided values shared flags fall back to.
type Defaults struct {
	Persona     string
	LibraryPath string
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "praxis" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "praxis",
		Short: "Rule-based rehab and performance plan recommender",
		Long: "praxis turns a triage choice and a four-question readiness check-in into a\n" +
			"phased plan, an example session, and a shortlist from your exercise library.",
		SilenceUsage: true,
	}

	root.PersistentFlags().String(flagFormat, formatText, "output format: text or json")
	root.PersistentFlags().Bool(flagNoDisclaimer, false, "omit the safety disclaimer from text output")

	root.AddCommand(
		newPlanCmd(app),
		newReadinessCmd(app),
		newRecommendCmd(app),
		newExportCmd(app),
		newShowCmd(app),
		newCatalogCmd(app),
		newCheckinCmd(app),
		newLibraryCmd(app),
	)

	return root
}
