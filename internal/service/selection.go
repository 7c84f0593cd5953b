package service

import (
	"github.com/alexanderramin/praxis/internal/app"
	"github.com/alexanderramin/praxis/internal/domain"
)

// ParseSelection parses the identifiers in req. Only the identifier the
// triage path consumes must be valid: the condition for A and C, the track
// for B. D and E override the track, so a bad one is dropped rather than
// rejected.
func ParseSelection(req app.GenerateRequest) (domain.Selection, error) {
	path, err := domain.ParseTriagePath(req.TriagePath)
	if err != nil {
		return domain.Selection{}, err
	}
	sel := domain.Selection{Path: path}

	switch {
	case path.IsClinical():
		if sel.Condition, err = domain.ParseConditionID(req.Condition); err != nil {
			return domain.Selection{}, err
		}
	case path == domain.PathPerformance:
		if sel.Track, err = domain.ParseTrackID(req.Track); err != nil {
			return domain.Selection{}, err
		}
	}

	if sel.Track == "" {
		if t, err := domain.ParseTrackID(req.Track); err == nil {
			sel.Track = t
		}
	}
	return sel, nil
}
