package domain

import (
	"fmt"
	"strings"
)

type Band string

const (
	BandGreen  Band = "Green"
	BandYellow Band = "Yellow"
	BandRed    Band = "Red"
)

// Bands lists every readiness band from best to worst.
var Bands = []Band{BandGreen, BandYellow, BandRed}

type TriagePath string

const (
	PathClinical    TriagePath = "A"
	PathPerformance TriagePath = "B"
	PathBoth        TriagePath = "C"
	PathMobility    TriagePath = "D"
	PathLongevity   TriagePath = "E"
)

// IsClinical reports whether the path is served by the clinical builder.
func (p TriagePath) IsClinical() bool {
	return p == PathClinical || p == PathBoth
}

type ConditionID string

const (
	ConditionPlantarFasciitis   ConditionID = "pf"
	ConditionAnkleSprain        ConditionID = "las"
	ConditionHamstringStrain    ConditionID = "hs"
	ConditionPatellofemoralPain ConditionID = "pfps"
	ConditionLowBackPain        ConditionID = "nsLBP"
	ConditionShoulderPain       ConditionID = "saps"
	ConditionTennisElbow        ConditionID = "le"
)

type TrackID string

const (
	TrackEndurance TrackID = "endurance"
	TrackGeneral   TrackID = "general"
	TrackHybrid    TrackID = "hybrid"
	TrackLongevity TrackID = "longevity"
)

// Identifier kinds reported by InvalidIdentifierError.
const (
	KindTriagePath = "triage_path"
	KindCondition  = "condition"
	KindTrack      = "track"
)

// InvalidIdentifierError is returned when an enumerated identifier is not
// part of its fixed set.
type InvalidIdentifierError struct {
	Kind  string
	Value string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("INVALID_IDENTIFIER: unknown %s %q", e.Kind, e.Value)
}

// ParseTriagePath accepts "A".."E" in either case.
func ParseTriagePath(s string) (TriagePath, error) {
	p := TriagePath(strings.ToUpper(strings.TrimSpace(s)))
	for _, t := range TriagePaths {
		if t.Key == p {
			return p, nil
		}
	}
	return "", &InvalidIdentifierError{Kind: KindTriagePath, Value: s}
}

// ParseConditionID matches condition ids case-insensitively ("nslbp" -> "nsLBP").
func ParseConditionID(s string) (ConditionID, error) {
	trimmed := strings.TrimSpace(s)
	for _, c := range Conditions {
		if strings.EqualFold(string(c.ID), trimmed) {
			return c.ID, nil
		}
	}
	return "", &InvalidIdentifierError{Kind: KindCondition, Value: s}
}

func ParseTrackID(s string) (TrackID, error) {
	trimmed := strings.TrimSpace(s)
	for _, t := range Tracks {
		if strings.EqualFold(string(t.ID), trimmed) {
			return t.ID, nil
		}
	}
	return "", &InvalidIdentifierError{Kind: KindTrack, Value: s}
}

// Valid reports whether c is one of the seven known conditions.
func (c ConditionID) Valid() bool {
	_, ok := LookupCondition(c)
	return ok
}

func (t TrackID) Valid() bool {
	_, ok := LookupTrack(t)
	return ok
}

func (p TriagePath) Valid() bool {
	_, ok := LookupTriagePath(p)
	return ok
}
