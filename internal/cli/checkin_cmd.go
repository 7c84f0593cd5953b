package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/praxis/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var errNotInteractive = errors.New("checkin needs an interactive terminal; use `praxis plan` with flags instead")

func newCheckinCmd(app *App) *cobra.Command {
	flags := newCheckinFlags(app.Defaults)
	var out string

	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Answer the check-in interactively and build today's plan",
		Long: "Walks through the triage choice, the four readiness questions, notes, and\n" +
			"coaching persona. Flags pre-fill the answers.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errNotInteractive
			}
			opts, err := outputOf(cmd)
			if err != nil {
				return err
			}

			flags.canonicalize()
			if err := checkinForm(flags).RunWithContext(cmd.Context()); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim("Check-in cancelled."))
					return nil
				}
				return err
			}

			resp, err := app.Plans.Generate(cmd.Context(), flags.request())
			if err != nil {
				return err
			}

			if opts.json {
				err = writeJSON(cmd.OutOrStdout(), newGenerateView(resp))
			} else {
				err = writeText(cmd.OutOrStdout(), opts, formatter.FormatGenerate(resp))
			}
			if err != nil || out == "" {
				return err
			}

			result, err := app.Exports.Save(cmd.Context(), resp, out)
			if err != nil {
				return err
			}
			if opts.json {
				return nil
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), "\n"+formatter.FormatExportResult(result))
			return err
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().StringVarP(&out, "out", "o", "", "also save the plan as a bundle to this file")
	return cmd
}
