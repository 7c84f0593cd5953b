package cli

import (
	"github.com/alexanderramin/praxis/internal/cli/formatter"
	"github.com/alexanderramin/praxis/internal/export"
	"github.com/spf13/cobra"
)

type exportView struct {
	Path     string         `json:"path"`
	Bundle   *export.Bundle `json:"bundle"`
	Warnings []string       `json:"warnings,omitempty"`
}

func newExportCmd(app *App) *cobra.Command {
	flags := newCheckinFlags(app.Defaults)
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Generate a plan and save it as a JSON bundle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := outputOf(cmd)
			if err != nil {
				return err
			}

			result, err := app.Exports.Export(cmd.Context(), flags.request(), out)
			if err != nil {
				return err
			}

			if opts.json {
				return writeJSON(cmd.OutOrStdout(), exportView{
					Path:     result.Path,
					Bundle:   result.Bundle,
					Warnings: result.Warnings,
				})
			}
			return writeText(cmd.OutOrStdout(), opts, formatter.FormatExportResult(result))
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().StringVarP(&out, "out", "o", export.DefaultFileName, "bundle file to write")
	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Render a saved plan bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := outputOf(cmd)
			if err != nil {
				return err
			}

			bundle, err := app.Exports.Open(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if opts.json {
				return export.Encode(cmd.OutOrStdout(), bundle)
			}
			return writeText(cmd.OutOrStdout(), opts, formatter.FormatBundle(bundle, app.now()))
		},
	}
}
