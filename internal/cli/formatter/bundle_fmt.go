package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/praxis/internal/app"
	"github.com/alexanderramin/praxis/internal/export"
)

// FormatBundle renders a saved plan bundle.
func FormatBundle(b *export.Bundle, now time.Time) string {
	var s strings.Builder

	s.WriteString(fmt.Sprintf("%s %s  %s %s\n",
		Dim("Bundle"), TruncID(b.ID),
		Dim("generated"), HumanDateFrom(b.GeneratedAt, now),
	))
	s.WriteString(FormatSelection(b.Selection(), b.Persona))
	s.WriteString("\n")
	if b.Notes != "" {
		s.WriteString(Dim("Notes: " + b.Notes))
		s.WriteString("\n")
	}
	s.WriteString("\n")
	s.WriteString(FormatReadiness(b.Readiness))
	s.WriteString("\n")
	s.WriteString(FormatPlan(b.Plan))
	s.WriteString("\n")
	s.WriteString(FormatAutoregulation(b.Readiness))

	return s.String()
}

func FormatExportResult(result *app.ExportResult) string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("%s Saved %s plan to %s %s\n",
		StyleGreen.Render("✔"),
		BandIndicator(result.Bundle.Readiness.Band),
		result.Path,
		TruncID(result.Bundle.ID),
	))
	if len(result.Warnings) > 0 {
		s.WriteString(FormatWarnings(result.Warnings))
	}
	return s.String()
}
