package cli

import (
	"github.com/alexanderramin/praxis/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newRecommendCmd(app *App) *cobra.Command {
	flags := newCheckinFlags(app.Defaults)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Shortlist exercises from the library for a selection",
		Args:  cobra.NoArgs,
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
				view := newGenerateView(resp)
				return writeJSON(cmd.OutOrStdout(), recommendView{
					Recommendations: view.Recommendations,
					FallbackUsed:    view.FallbackUsed,
					Warnings:        view.Warnings,
				})
			}

			text := formatter.FormatSelection(resp.Selection, resp.Persona) + "\n\n" +
				formatter.FormatRecommendations(resp.Recommendations, resp.FallbackUsed)
			if len(resp.Warnings) > 0 {
				text += "\n" + formatter.FormatWarnings(resp.Warnings)
			}
			return writeText(cmd.OutOrStdout(), opts, text)
		},
	}

	flags.registerSelection(cmd.Flags())
	return cmd
}
