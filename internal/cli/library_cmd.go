package cli

import (
	"fmt"

	"github.com/alexanderramin/praxis/internal/cli/formatter"
	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/spf13/cobra"
)

func newLibraryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Manage the local exercise library",
	}

	cmd.AddCommand(
		newLibraryImportCmd(app),
		newLibraryListCmd(app),
	)

	return cmd
}

func newLibraryImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Replace the local catalog with a JSON exercise library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := outputOf(cmd)
			if err != nil {
				return err
			}

			result, err := app.Library.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if opts.json {
				return writeJSON(cmd.OutOrStdout(), result.Import)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(result))
			return err
		},
	}
}

type libraryView struct {
	Import    *domain.LibraryImport   `json:"import"`
	Exercises []domain.ExerciseRecord `json:"exercises"`
}

func newLibraryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the imported exercise catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := outputOf(cmd)
			if err != nil {
				return err
			}

			listing, err := app.Library.List(cmd.Context())
			if err != nil {
				return err
			}

			if opts.json {
				return writeJSON(cmd.OutOrStdout(), libraryView{Import: listing.Import, Exercises: listing.Exercises})
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLibraryListing(listing, app.now()))
			return err
		},
	}
}
