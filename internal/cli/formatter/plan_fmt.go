package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/praxis/internal/app"
	"github.com/alexanderramin/praxis/internal/domain"
)

// Width is the column budget for wrapped plan text.
const Width = 78

// Disclaimer is shown above text output unless suppressed.
const Disclaimer = "This demo is educational and not a substitute for medical care. Seek a professional for red‑flag symptoms."

func FormatDisclaimer() string {
	return StyleYellow.Render("⚠ Safety first") + "\n" + Dim(wrapText(Disclaimer, Width)) + "\n"
}

// FormatSelection renders the badges describing what a plan was built for.
func FormatSelection(sel domain.Selection, persona string) string {
	var badges []string
	if opt, ok := domain.LookupTriagePath(sel.Path); ok {
		badges = append(badges, "Path: "+opt.Label)
	}
	if sel.Path.IsClinical() {
		if c, ok := domain.LookupCondition(sel.Condition); ok {
			badges = append(badges, "Condition: "+c.Name)
		}
	} else if t, ok := domain.LookupTrack(sel.EffectiveTrack()); ok {
		badges = append(badges, "Track: "+t.Name)
	}
	if persona != "" {
		badges = append(badges, "Persona: "+persona)
	}

	rendered := make([]string, len(badges))
	for i, badge := range badges {
		rendered[i] = StylePurple.Render("[" + badge + "]")
	}
	return strings.Join(rendered, " ")
}

// FormatPlan renders a generated plan: headline, summary, phases as a
// tree, then the session example and education blocks when present.
func FormatPlan(plan domain.Plan) string {
	var b strings.Builder

	b.WriteString(Header(plan.Headline))
	b.WriteString("\n")
	b.WriteString(Dim(wrapText(plan.Summary, Width)))
	b.WriteString("\n\n")

	var items []TreeItem
	for i, phase := range plan.Phases {
		items = append(items, TreeItem{Title: phase.Title, Detail: fmt.Sprintf("%d/%d", i+1, len(plan.Phases))})
		for j, bullet := range phase.Bullets {
			items = append(items, TreeItem{Title: bullet, Level: 1, IsLast: j == len(phase.Bullets)-1})
		}
	}
	b.WriteString(RenderTree(items, Width))

	if s := plan.SessionExample; s != nil {
		b.WriteString("\n")
		b.WriteString(RenderBox(s.Title, bulletList(s.Bullets, Width-6)))
		b.WriteString("\n")
	}

	if e := plan.Education; e != nil {
		b.WriteString("\n")
		b.WriteString(Bold(e.Title))
		b.WriteString("\n")
		b.WriteString(bulletList(e.Bullets, Width))
		b.WriteString("\n")
	}

	return b.String()
}

// FormatGenerate renders the full result of a plan request.
func FormatGenerate(resp *app.GenerateResponse) string {
	var b strings.Builder

	b.WriteString(FormatSelection(resp.Selection, resp.Persona))
	b.WriteString("\n")
	if resp.Notes != "" {
		b.WriteString(Dim("Notes: " + resp.Notes))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(FormatReadiness(resp.Readiness))
	b.WriteString("\n")
	b.WriteString(FormatPlan(resp.Plan))
	b.WriteString("\n")
	b.WriteString(FormatRecommendations(resp.Recommendations, resp.FallbackUsed))
	b.WriteString("\n")
	b.WriteString(FormatAutoregulation(resp.Readiness))
	if len(resp.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatWarnings(resp.Warnings))
	}

	return b.String()
}

func FormatWarnings(warnings []string) string {
	var b strings.Builder
	for _, w := range warnings {
		b.WriteString(StyleYellow.Render("! ") + hangingIndent(w, 2, Width) + "\n")
	}
	return b.String()
}

func bulletList(bullets []string, width int) string {
	lines := make([]string, len(bullets))
	for i, bullet := range bullets {
		lines[i] = StyleBlue.Render("• ") + hangingIndent(bullet, 2, width)
	}
	return strings.Join(lines, "\n")
}
