package formatter

import (
	"strings"

	"github.com/alexanderramin/praxis/internal/domain"
)

// FormatCatalog lists every selectable path, condition, track, and persona.
func FormatCatalog() string {
	var b strings.Builder

	paths := make([][]string, len(domain.TriagePaths))
	for i, t := range domain.TriagePaths {
		paths[i] = []string{string(t.Key), t.Label}
	}
	b.WriteString(Header("Triage paths"))
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"KEY", "PATH"}, paths))

	conditions := make([][]string, len(domain.Conditions))
	for i, c := range domain.Conditions {
		conditions[i] = []string{string(c.ID), c.Name, c.Area}
	}
	b.WriteString("\n")
	b.WriteString(Header("Conditions (paths A, C)"))
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"ID", "CONDITION", "AREA"}, conditions))

	tracks := make([][]string, len(domain.Tracks))
	for i, t := range domain.Tracks {
		tracks[i] = []string{string(t.ID), t.Name}
	}
	b.WriteString("\n")
	b.WriteString(Header("Performance tracks (path B)"))
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"ID", "TRACK"}, tracks))
	b.WriteString(Dim("Path D always uses general; path E always uses longevity."))
	b.WriteString("\n")

	b.WriteString("\n")
	b.WriteString(Header("Personas"))
	b.WriteString("\n")
	for _, p := range domain.Personas {
		line := "  " + p
		if p == domain.DefaultPersona {
			line += " " + Dim("(default)")
		}
		b.WriteString(line + "\n")
	}

	return b.String()
}
