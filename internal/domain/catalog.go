package domain

// TriageOption is a selectable top-level path with its display label.
type TriageOption struct {
	Key   TriagePath
	Label string
}

type Condition struct {
	ID   ConditionID
	Name string
	// Area is informational only; no decision logic reads it.
	Area string
}

type Track struct {
	ID   TrackID
	Name string
}

var TriagePaths = []TriageOption{
	{Key: PathClinical, Label: "Clinical: fix a specific pain"},
	{Key: PathPerformance, Label: "Performance: specific fitness goal"},
	{Key: PathBoth, Label: "Both: goal + an ache in the way"},
	{Key: PathMobility, Label: "Mobility / flexibility focus"},
	{Key: PathLongevity, Label: "Longevity / healthspan"},
}

var Conditions = []Condition{
	{ID: ConditionPlantarFasciitis, Name: "Plantar Fasciitis", Area: "Foot"},
	{ID: ConditionAnkleSprain, Name: "Lateral Ankle Sprain", Area: "Ankle"},
	{ID: ConditionHamstringStrain, Name: "Hamstring Strain", Area: "Hamstring"},
	{ID: ConditionPatellofemoralPain, Name: "Patellofemoral Pain (PFPS)", Area: "Knee"},
	{ID: ConditionLowBackPain, Name: "Low Back Pain (Non-specific)", Area: "Spine"},
	{ID: ConditionShoulderPain, Name: "Shoulder Pain (Subacromial)", Area: "Shoulder"},
	{ID: ConditionTennisElbow, Name: "Tennis Elbow (Lateral Epicondylopathy)", Area: "Elbow/Wrist"},
}

var Tracks = []Track{
	{ID: TrackEndurance, Name: "Endurance Athlete (80/20)"},
	{ID: TrackGeneral, Name: "General Health & Fitness"},
	{ID: TrackHybrid, Name: "Hybrid: Strength + Endurance"},
	{ID: TrackLongevity, Name: "Longevity Protocol"},
}

// Personas are coaching voices offered to the user. The core passes the
// chosen value through untouched.
var Personas = []string{"Nurturer", "Analyst", "Motivator", "Pragmatist"}

const DefaultPersona = "Analyst"

func LookupTriagePath(p TriagePath) (TriageOption, bool) {
	for _, t := range TriagePaths {
		if t.Key == p {
			return t, true
		}
	}
	return TriageOption{}, false
}

func LookupCondition(id ConditionID) (Condition, bool) {
	for _, c := range Conditions {
		if c.ID == id {
			return c, true
		}
	}
	return Condition{}, false
}

func LookupTrack(id TrackID) (Track, bool) {
	for _, t := range Tracks {
		if t.ID == id {
			return t, true
		}
	}
	return Track{}, false
}
