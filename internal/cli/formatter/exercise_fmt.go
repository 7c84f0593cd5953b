package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/praxis/internal/app"
	"github.com/alexanderramin/praxis/internal/domain"
)

var exerciseHeaders = []string{"#", "EXERCISE", "PATTERN", "GOAL", "APPLICATION", "LEVEL"}

func exerciseRows(recs []domain.ExerciseRecord) [][]string {
	rows := make([][]string, len(recs))
	for i, r := range recs {
		rows[i] = []string{
			fmt.Sprintf("%d", i+1),
			orDash(r.Name),
			orDash(r.DisplayPattern()),
			orDash(r.PrimaryGoal),
			orDash(r.Application),
			orDash(r.SkillLevel),
		}
	}
	return rows
}

func orDash(s string) string {
	if s == "" {
		return "--"
	}
	return s
}

// FormatRecommendations renders the exercise shortlist.
func FormatRecommendations(recs []domain.ExerciseRecord, fallback bool) string {
	var b strings.Builder
	b.WriteString(Header("Suggested exercises"))
	b.WriteString("\n")
	if len(recs) == 0 {
		b.WriteString(Dim("Library not loaded yet."))
		b.WriteString("\n")
		return b.String()
	}
	if fallback {
		b.WriteString(Dim("Few direct matches for this path; showing the start of the library."))
		b.WriteString("\n")
	}
	b.WriteString(RenderTable(exerciseHeaders, exerciseRows(recs)))
	return b.String()
}

// FormatLibraryListing renders the local catalog and where it came from.
func FormatLibraryListing(listing *app.LibraryListing, now time.Time) string {
	var b strings.Builder
	b.WriteString(Header("Exercise library"))
	b.WriteString("\n")

	if listing.Import == nil {
		b.WriteString(Dim("No library imported. Run `praxis library import <file.json>`."))
		b.WriteString("\n")
		return b.String()
	}

	imp := listing.Import
	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %d\n\n",
		Dim("Source:"), imp.Source,
		Dim("Imported:"), HumanDateFrom(imp.ImportedAt, now),
		Dim("Exercises:"), len(listing.Exercises),
	))
	b.WriteString(RenderTable(exerciseHeaders, exerciseRows(listing.Exercises)))
	return b.String()
}

func FormatImportResult(result *app.ImportResult) string {
	return fmt.Sprintf("%s Imported %d exercises from %s %s\n",
		StyleGreen.Render("✔"),
		result.ExerciseCount,
		result.Import.Source,
		TruncID(result.Import.ID),
	)
}
