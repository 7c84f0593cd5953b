package cli

import (
	"github.com/alexanderramin/praxis/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newReadinessCmd(app *App) *cobra.Command {
	flags := newCheckinFlags(app.Defaults)

	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Score today's readiness from the four check-in ratings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := outputOf(cmd)
			if err != nil {
				return err
			}

			result := app.Plans.Assess(cmd.Context(), flags.readiness)
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			return writeText(cmd.OutOrStdout(), opts,
				formatter.FormatReadiness(result)+"\n"+formatter.FormatAutoregulation(result))
		},
	}

	flags.registerReadiness(cmd.Flags())
	return cmd
}
