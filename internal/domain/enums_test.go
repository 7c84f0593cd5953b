package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTriagePath(t *testing.T) {
	tests := []struct {
		in   string
		want TriagePath
	}{
		{"A", PathClinical},
		{"b", PathPerformance},
		{" C ", PathBoth},
		{"d", PathMobility},
		{"E", PathLongevity},
	}
	for _, tt := range tests {
		got, err := ParseTriagePath(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseTriagePath_Unknown(t *testing.T) {
	_, err := ParseTriagePath("F")
	require.Error(t, err)

	var idErr *InvalidIdentifierError
	require.True(t, errors.As(err, &idErr))
	assert.Equal(t, KindTriagePath, idErr.Kind)
	assert.Equal(t, "F", idErr.Value)
	assert.Contains(t, err.Error(), "INVALID_IDENTIFIER")
}

func TestParseConditionID_CaseInsensitive(t *testing.T) {
	got, err := ParseConditionID("nslbp")
	require.NoError(t, err)
	assert.Equal(t, ConditionLowBackPain, got)

	got, err = ParseConditionID("PF")
	require.NoError(t, err)
	assert.Equal(t, ConditionPlantarFasciitis, got)
}

func TestParseConditionID_Unknown(t *testing.T) {
	_, err := ParseConditionID("acl")
	var idErr *InvalidIdentifierError
	require.ErrorAs(t, err, &idErr)
	assert.Equal(t, KindCondition, idErr.Kind)
}

func TestParseTrackID(t *testing.T) {
	for _, tr := range Tracks {
		got, err := ParseTrackID(string(tr.ID))
		require.NoError(t, err)
		assert.Equal(t, tr.ID, got)
	}

	_, err := ParseTrackID("powerlifting")
	var idErr *InvalidIdentifierError
	require.ErrorAs(t, err, &idErr)
	assert.Equal(t, KindTrack, idErr.Kind)
}

func TestCatalogSizes(t *testing.T) {
	assert.Len(t, TriagePaths, 5)
	assert.Len(t, Conditions, 7)
	assert.Len(t, Tracks, 4)
	assert.Contains(t, Personas, DefaultPersona)
}
