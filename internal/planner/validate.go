package planner

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/praxis/internal/domain"
)

// ValidateCatalog checks a catalog for structural errors against the fixed
// condition and track sets. Returns every problem found.
func ValidateCatalog(c *CatalogSchema) []error {
	var errs []error

	conditionIDs := make([]string, 0, len(domain.Conditions))
	for _, cond := range domain.Conditions {
		conditionIDs = append(conditionIDs, string(cond.ID))
	}
	trackIDs := make([]string, 0, len(domain.Tracks))
	for _, tr := range domain.Tracks {
		trackIDs = append(trackIDs, string(tr.ID))
	}

	errs = append(errs, validateSection("clinical", &c.Clinical, conditionIDs, true)...)
	errs = append(errs, validateSection("performance", &c.Performance, trackIDs, false)...)
	return errs
}

func validateSection(name string, s *SectionSchema, ids []string, wantCue bool) []error {
	var errs []error

	if s.Summary == "" {
		errs = append(errs, fmt.Errorf("%s.summary is required", name))
	}
	if wantCue {
		if s.Cue == nil || !s.Cue.Complete() {
			errs = append(errs, fmt.Errorf("%s.cue must define text for every band", name))
		}
	} else if s.Cue != nil {
		errs = append(errs, fmt.Errorf("%s.cue is not supported", name))
	}
	errs = append(errs, validateSession(name+".session", &s.Session)...)

	known := make(map[string]bool, len(ids))
	for _, id := range ids {
		known[id] = true
		tmpl, ok := s.Templates[id]
		if !ok {
			errs = append(errs, fmt.Errorf("%s.templates: missing template for %q", name, id))
			continue
		}
		errs = append(errs, validateTemplate(fmt.Sprintf("%s.templates.%s", name, id), &tmpl, wantCue)...)
	}

	var extra []string
	for id := range s.Templates {
		if !known[id] {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	for _, id := range extra {
		errs = append(errs, fmt.Errorf("%s.templates: unknown id %q", name, id))
	}

	return errs
}

func validateSession(prefix string, s *SessionSchema) []error {
	var errs []error
	if s.Title == "" {
		errs = append(errs, fmt.Errorf("%s.title is required", prefix))
	}
	if !s.Volume.Complete() {
		errs = append(errs, fmt.Errorf("%s.volume must define text for every band", prefix))
	}
	if len(s.Bullets) == 0 {
		errs = append(errs, fmt.Errorf("%s.bullets must not be empty", prefix))
	}
	errs = append(errs, validateLines(prefix+".bullets", s.Bullets)...)
	return errs
}

func validateTemplate(prefix string, t *PlanTemplate, wantCue bool) []error {
	var errs []error

	if t.Headline == "" {
		errs = append(errs, fmt.Errorf("%s.headline is required", prefix))
	}
	if len(t.Phases) == 0 {
		errs = append(errs, fmt.Errorf("%s.phases must not be empty", prefix))
	}

	cues := 0
	for i, p := range t.Phases {
		pp := fmt.Sprintf("%s.phases[%d]", prefix, i)
		if p.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", pp))
		}
		if len(p.Bullets) == 0 && !p.Cue {
			errs = append(errs, fmt.Errorf("%s.bullets must not be empty", pp))
		}
		errs = append(errs, validateLines(pp+".bullets", p.Bullets)...)
		if p.Cue {
			cues++
		}
	}
	switch {
	case wantCue && cues != 1:
		errs = append(errs, fmt.Errorf("%s: exactly one phase must carry the readiness cue, found %d", prefix, cues))
	case !wantCue && cues > 0:
		errs = append(errs, fmt.Errorf("%s: readiness cue is not supported here", prefix))
	}

	if t.Education != nil {
		if t.Education.Title == "" {
			errs = append(errs, fmt.Errorf("%s.education.title is required", prefix))
		}
		if len(t.Education.Bullets) == 0 {
			errs = append(errs, fmt.Errorf("%s.education.bullets must not be empty", prefix))
		}
	}

	return errs
}

func validateLines(prefix string, lines []Line) []error {
	var errs []error
	for i, l := range lines {
		if !l.Complete() {
			errs = append(errs, fmt.Errorf("%s[%d]: text missing for at least one band", prefix, i))
		}
	}
	return errs
}
