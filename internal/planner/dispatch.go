package planner

import "github.com/alexanderramin/praxis/internal/domain"

type buildFunc func(b *Builder, sel domain.Selection, r domain.ReadinessResult) (domain.Plan, error)

func clinicalFor(b *Builder, sel domain.Selection, r domain.ReadinessResult) (domain.Plan, error) {
	return b.Clinical(sel.Condition, r)
}

func performanceFor(b *Builder, sel domain.Selection, r domain.ReadinessResult) (domain.Plan, error) {
	return b.Performance(sel.EffectiveTrack(), r)
}

var builders = map[domain.TriagePath]buildFunc{
	domain.PathClinical:    clinicalFor,
	domain.PathBoth:        clinicalFor,
	domain.PathPerformance: performanceFor,
	domain.PathMobility:    performanceFor,
	domain.PathLongevity:   performanceFor,
}

// Dispatch picks the clinical or performance builder for the selection's
// triage path. Mobility (D) always yields the general track and longevity
// (E) the longevity track, whatever track was selected.
func (b *Builder) Dispatch(sel domain.Selection, r domain.ReadinessResult) (domain.Plan, error) {
	fn, ok := builders[sel.Path]
	if !ok {
		return domain.Plan{}, &domain.InvalidIdentifierError{Kind: domain.KindTriagePath, Value: string(sel.Path)}
	}
	return fn(b, sel, r)
}

// Dispatch routes to the embedded catalog's builders.
func Dispatch(sel domain.Selection, r domain.ReadinessResult) (domain.Plan, error) {
	b, err := defaultBuilder()
	if err != nil {
		return domain.Plan{}, err
	}
	return b.Dispatch(sel, r)
}
