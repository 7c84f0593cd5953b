package service

import (
	"errors"
	"testing"

	"github.com/alexanderramin/praxis/internal/app"
	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelection(t *testing.T) {
	cases := []struct {
		name string
		req  app.GenerateRequest
		want domain.Selection
	}{
		{"clinical", app.GenerateRequest{TriagePath: "a", Condition: "NSLBP"}, domain.Selection{Path: domain.PathClinical, Condition: domain.ConditionLowBackPain}},
		{"both keeps valid track", app.GenerateRequest{TriagePath: "C", Condition: "le", Track: "hybrid"}, domain.Selection{Path: domain.PathBoth, Condition: domain.ConditionTennisElbow, Track: domain.TrackHybrid}},
		{"both ignores bad track", app.GenerateRequest{TriagePath: "C", Condition: "le", Track: "yoga"}, domain.Selection{Path: domain.PathBoth, Condition: domain.ConditionTennisElbow}},
		{"performance", app.GenerateRequest{TriagePath: "B", Track: "Endurance"}, domain.Selection{Path: domain.PathPerformance, Track: domain.TrackEndurance}},
		{"mobility ignores condition", app.GenerateRequest{TriagePath: "D", Condition: "bogus", Track: "hybrid"}, domain.Selection{Path: domain.PathMobility, Track: domain.TrackHybrid}},
		{"longevity with bad track", app.GenerateRequest{TriagePath: "E", Track: "yoga"}, domain.Selection{Path: domain.PathLongevity}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseSelection(tc.req)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseSelection_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		req   app.GenerateRequest
		kind  string
		value string
	}{
		{"path", app.GenerateRequest{TriagePath: "F"}, domain.KindTriagePath, "F"},
		{"condition on A", app.GenerateRequest{TriagePath: "A", Condition: "acl"}, domain.KindCondition, "acl"},
		{"condition on C", app.GenerateRequest{TriagePath: "C", Condition: ""}, domain.KindCondition, ""},
		{"track on B", app.GenerateRequest{TriagePath: "B", Track: "yoga"}, domain.KindTrack, "yoga"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseSelection(tc.req)
			var idErr *app.InvalidIdentifierError
			require.True(t, errors.As(err, &idErr), "want InvalidIdentifierError, got %v", err)
			assert.Equal(t, tc.kind, idErr.Kind)
			assert.Equal(t, tc.value, idErr.Value)
		})
	}
}
