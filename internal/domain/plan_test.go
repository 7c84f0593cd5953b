package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelection_EffectiveTrack(t *testing.T) {
	assert.Equal(t, TrackHybrid, Selection{Path: PathPerformance, Track: TrackHybrid}.EffectiveTrack())
	assert.Equal(t, TrackGeneral, Selection{Path: PathMobility, Track: TrackHybrid}.EffectiveTrack())
	assert.Equal(t, TrackLongevity, Selection{Path: PathLongevity, Track: TrackEndurance}.EffectiveTrack())
}

func TestSelection_Validate(t *testing.T) {
	tests := []struct {
		name    string
		sel     Selection
		errKind string
	}{
		{"clinical ok", Selection{Path: PathClinical, Condition: ConditionTennisElbow}, ""},
		{"clinical ignores bad track", Selection{Path: PathBoth, Condition: ConditionPlantarFasciitis, Track: "bogus"}, ""},
		{"clinical bad condition", Selection{Path: PathClinical, Condition: "bogus"}, KindCondition},
		{"performance ok", Selection{Path: PathPerformance, Track: TrackEndurance}, ""},
		{"performance bad track", Selection{Path: PathPerformance, Track: "bogus"}, KindTrack},
		{"mobility ignores track", Selection{Path: PathMobility, Track: "bogus"}, ""},
		{"longevity ignores track", Selection{Path: PathLongevity}, ""},
		{"unknown path", Selection{Path: "Z"}, KindTriagePath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sel.Validate()
			if tt.errKind == "" {
				assert.NoError(t, err)
				return
			}
			var idErr *InvalidIdentifierError
			require.ErrorAs(t, err, &idErr)
			assert.Equal(t, tt.errKind, idErr.Kind)
		})
	}
}
