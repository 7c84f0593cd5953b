package cli

import (
	"fmt"
	"math"

	"github.com/alexanderramin/praxis/internal/cli/formatter"
	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// praxisHuhTheme returns a huh theme matching the praxis color palette.
func praxisHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func triagePathOptions() []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(domain.TriagePaths))
	for _, t := range domain.TriagePaths {
		options = append(options, huh.NewOption(fmt.Sprintf("%s — %s", t.Key, t.Label), string(t.Key)))
	}
	return options
}

func conditionOptions() []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(domain.Conditions))
	for _, c := range domain.Conditions {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", c.Name, c.Area), string(c.ID)))
	}
	return options
}

func trackOptions() []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(domain.Tracks))
	for _, t := range domain.Tracks {
		options = append(options, huh.NewOption(t.Name, string(t.ID)))
	}
	return options
}

// ratingSelect offers the 1-5 scale. Non-integer flag values snap to the
// nearest option when the form opens.
func ratingSelect(title string, value *float64) *huh.Select[float64] {
	options := make([]huh.Option[float64], 0, 5)
	for v := 1; v <= 5; v++ {
		options = append(options, huh.NewOption(fmt.Sprint(v), float64(v)))
	}
	*value = snapRating(*value)
	return huh.NewSelect[float64]().
		Title(title).
		Options(options...).
		Value(value)
}

func snapRating(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 1:
		return 1
	case v > 5:
		return 5
	default:
		return math.Round(v)
	}
}

// checkinForm collects the triage choice, readiness ratings, notes, and
// persona into f. Condition and track questions appear only for the paths
// that use them.
func checkinForm(f *checkinFlags) *huh.Form {
	path := func() domain.TriagePath { return domain.TriagePath(f.path) }

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Where are you starting?").
				Options(triagePathOptions()...).
				Value(&f.path),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Condition").
				Options(conditionOptions()...).
				Value(&f.condition),
		).WithHideFunc(func() bool { return !path().IsClinical() }),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Performance goal").
				Options(trackOptions()...).
				Value(&f.track),
		).WithHideFunc(func() bool { return path() != domain.PathPerformance }),
		huh.NewGroup(
			ratingSelect("Sleep quality (last night)", &f.readiness.Sleep),
			ratingSelect("Life stress (now) — 5 means low stress", &f.readiness.Stress),
			ratingSelect("Energy level (today)", &f.readiness.Energy),
			ratingSelect("Muscle soreness — 5 means not sore", &f.readiness.Soreness),
		).Title("Daily readiness check-in"),
		huh.NewGroup(
			huh.NewText().
				Title("Notes / context").
				Placeholder("e.g., long run yesterday, knee a bit cranky").
				Value(&f.notes),
			huh.NewSelect[string]().
				Title("Coaching persona").
				Options(huh.NewOptions(domain.Personas...)...).
				Value(&f.persona),
		),
	).WithTheme(praxisHuhTheme()).WithShowHelp(false)
}
