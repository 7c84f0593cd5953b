package cli

import (
	"github.com/alexanderramin/praxis/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	flags := newCheckinFlags(app.Defaults)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Build today's plan from a triage choice and readiness check-in",
		Example: "  praxis plan --path A --condition pfps --sleep 2 --stress 3\n" +
			"  praxis plan --path B --track hybrid --format json",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := outputOf(cmd)
			if err != nil {
				return err
			}

			resp, err := app.Plans.Generate(cmd.Context(), flags.request())
			if err != nil {
				return err
			}

			if opts.json {
				return writeJSON(cmd.OutOrStdout(), newGenerateView(resp))
			}
			return writeText(cmd.OutOrStdout(), opts, formatter.FormatGenerate(resp))
		},
	}

	flags.register(cmd.Flags())
	return cmd
}
