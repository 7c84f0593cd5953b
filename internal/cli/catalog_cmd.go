package cli

import (
	"fmt"

	"github.com/alexanderramin/praxis/internal/cli/formatter"
	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/spf13/cobra"
)

type catalogEntry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Area  string `json:"area,omitempty"`
}

type catalogView struct {
	TriagePaths    []catalogEntry `json:"triagePaths"`
	Conditions     []catalogEntry `json:"conditions"`
	Tracks         []catalogEntry `json:"tracks"`
	Personas       []string       `json:"personas"`
	DefaultPersona string         `json:"defaultPersona"`
}

func newCatalogView() catalogView {
	v := catalogView{Personas: domain.Personas, DefaultPersona: domain.DefaultPersona}
	for _, t := range domain.TriagePaths {
		v.TriagePaths = append(v.TriagePaths, catalogEntry{ID: string(t.Key), Label: t.Label})
	}
	for _, c := range domain.Conditions {
		v.Conditions = append(v.Conditions, catalogEntry{ID: string(c.ID), Label: c.Name, Area: c.Area})
	}
	for _, t := range domain.Tracks {
		v.Tracks = append(v.Tracks, catalogEntry{ID: string(t.ID), Label: t.Name})
	}
	return v
}

func newCatalogCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List triage paths, conditions, tracks, and personas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := outputOf(cmd)
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), newCatalogView())
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCatalog())
			return err
		},
	}
}
