package domain

type Phase struct {
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

// Session is one illustrative session for today under the active band.
type Session struct {
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

type EducationBlock struct {
	Title   string   `json:"title"`
	Bullets []string `json:"bullets"`
}

type Plan struct {
	Headline       string          `json:"headline"`
	Summary        string          `json:"summary"`
	Readiness      ReadinessResult `json:"readiness"`
	Phases         []Phase         `json:"phases"`
	SessionExample *Session        `json:"sessionExample,omitempty"`
	Education      *EducationBlock `json:"education,omitempty"`
}

// Selection is the user's triage choice. Only the identifiers relevant to
// Path are consulted.
type Selection struct {
	Path      TriagePath
	Condition ConditionID
	Track     TrackID
}

// EffectiveTrack returns the performance track a non-clinical path resolves
// to: D forces general, E forces longevity, B uses the chosen track.
func (s Selection) EffectiveTrack() TrackID {
	switch s.Path {
	case PathMobility:
		return TrackGeneral
	case PathLongevity:
		return TrackLongevity
	default:
		return s.Track
	}
}

// Validate checks only the identifiers the path will use.
func (s Selection) Validate() error {
	if !s.Path.Valid() {
		return &InvalidIdentifierError{Kind: KindTriagePath, Value: string(s.Path)}
	}
	if s.Path.IsClinical() {
		if !s.Condition.Valid() {
			return &InvalidIdentifierError{Kind: KindCondition, Value: string(s.Condition)}
		}
		return nil
	}
	if !s.EffectiveTrack().Valid() {
		return &InvalidIdentifierError{Kind: KindTrack, Value: string(s.Track)}
	}
	return nil
}
