package planner

import (
	"strings"

	"github.com/alexanderramin/praxis/internal/domain"
)

const volumePlaceholder = "{volume}"

// Builder renders plans from a validated catalog. Every plan it returns owns
// fresh slices; nothing is shared with the catalog.
type Builder struct {
	catalog *CatalogSchema
}

func NewBuilder(catalog *CatalogSchema) *Builder {
	return &Builder{catalog: catalog}
}

// Clinical builds the rehabilitation plan for a condition.
func (b *Builder) Clinical(id domain.ConditionID, r domain.ReadinessResult) (domain.Plan, error) {
	tmpl, ok := b.catalog.Clinical.Templates[string(id)]
	if !ok {
		return domain.Plan{}, &domain.InvalidIdentifierError{Kind: domain.KindCondition, Value: string(id)}
	}
	return renderPlan(&b.catalog.Clinical, &tmpl, r), nil
}

// Performance builds the training plan for a track.
func (b *Builder) Performance(id domain.TrackID, r domain.ReadinessResult) (domain.Plan, error) {
	tmpl, ok := b.catalog.Performance.Templates[string(id)]
	if !ok {
		return domain.Plan{}, &domain.InvalidIdentifierError{Kind: domain.KindTrack, Value: string(id)}
	}
	return renderPlan(&b.catalog.Performance, &tmpl, r), nil
}

func renderPlan(section *SectionSchema, tmpl *PlanTemplate, r domain.ReadinessResult) domain.Plan {
	band := r.Band
	plan := domain.Plan{
		Headline:  tmpl.Headline,
		Summary:   section.Summary,
		Readiness: r,
		Phases:    make([]domain.Phase, 0, len(tmpl.Phases)),
	}

	for _, p := range tmpl.Phases {
		bullets := resolveLines(p.Bullets, band)
		if p.Cue && section.Cue != nil {
			bullets = append(bullets, section.Cue.Resolve(band))
		}
		plan.Phases = append(plan.Phases, domain.Phase{Title: p.Title, Bullets: bullets})
	}

	plan.SessionExample = &domain.Session{
		Title:   strings.ReplaceAll(section.Session.Title, volumePlaceholder, section.Session.Volume.Resolve(band)),
		Bullets: resolveLines(section.Session.Bullets, band),
	}

	if tmpl.Education != nil {
		plan.Education = &domain.EducationBlock{
			Title:   tmpl.Education.Title,
			Bullets: append([]string(nil), tmpl.Education.Bullets...),
		}
	}

	return plan
}

func resolveLines(lines []Line, band domain.Band) []string {
	out := make([]string, 0, len(lines)+1)
	for _, l := range lines {
		out = append(out, l.Resolve(band))
	}
	return out
}

// BuildClinical renders a clinical plan from the embedded catalog.
func BuildClinical(id domain.ConditionID, r domain.ReadinessResult) (domain.Plan, error) {
	b, err := defaultBuilder()
	if err != nil {
		return domain.Plan{}, err
	}
	return b.Clinical(id, r)
}

// BuildPerformance renders a performance plan from the embedded catalog.
func BuildPerformance(id domain.TrackID, r domain.ReadinessResult) (domain.Plan, error) {
	b, err := defaultBuilder()
	if err != nil {
		return domain.Plan{}, err
	}
	return b.Performance(id, r)
}

func defaultBuilder() (*Builder, error) {
	c, err := DefaultCatalog()
	if err != nil {
		return nil, err
	}
	return NewBuilder(c), nil
}
