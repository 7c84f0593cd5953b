package readiness

import (
	"math"
	"testing"

	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/stretchr/testify/assert"
)

func ratings(sleep, stress, energy, soreness float64) domain.ReadinessInputs {
	return domain.ReadinessInputs{Sleep: sleep, Stress: stress, Energy: energy, Soreness: soreness}
}

func TestScore_Extremes(t *testing.T) {
	best := Score(ratings(5, 5, 5, 5))
	assert.Equal(t, 100, best.Score)
	assert.Equal(t, domain.BandGreen, best.Band)

	worst := Score(ratings(1, 1, 1, 1))
	assert.Equal(t, 40, worst.Score)
	assert.Equal(t, domain.BandRed, worst.Band)
}

func TestScore_DefaultInputsAreYellow(t *testing.T) {
	// mean 4 -> 85, the top of the Yellow band
	result := Score(domain.DefaultReadinessInputs())
	assert.Equal(t, 85, result.Score)
	assert.Equal(t, domain.BandYellow, result.Band)
	assert.Equal(t, "Trim volume ~15–20%, keep intensity similar.", result.Guidance)
}

func TestScore_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		in   domain.ReadinessInputs
		want int
	}{
		{"43.75 rounds to 44", ratings(2, 1, 1, 1), 44},
		{"47.5 rounds up", ratings(2, 2, 1, 1), 48},
		{"just under yellow", ratings(3, 2, 2, 2), 59},
		{"62.5 is yellow", ratings(3, 3, 2, 2), 63},
		{"just into green", ratings(5, 4, 4, 4), 89},
		{"fractional ratings", ratings(4.5, 4.5, 4.5, 4.5), 93},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.in).Score)
		})
	}
}

func TestScore_MissingRatingsCountAsWorst(t *testing.T) {
	missing := Score(domain.ReadinessInputs{})
	assert.Equal(t, 40, missing.Score)

	partial := Score(ratings(5, 5, 5, 0))
	assert.Equal(t, Score(ratings(5, 5, 5, 1)), partial)

	nan := Score(ratings(math.NaN(), 5, 5, 5))
	assert.Equal(t, Score(ratings(1, 5, 5, 5)), nan)
}

func TestScore_ClampsOutOfRange(t *testing.T) {
	assert.Equal(t, 100, Score(ratings(9, 7, 5, math.Inf(1))).Score)
	assert.Equal(t, 40, Score(ratings(-3, -1, 0.5, 0.2)).Score)
}

func TestClassifyBand_Thresholds(t *testing.T) {
	assert.Equal(t, domain.BandGreen, ClassifyBand(86))
	assert.Equal(t, domain.BandYellow, ClassifyBand(85))
	assert.Equal(t, domain.BandYellow, ClassifyBand(60))
	assert.Equal(t, domain.BandRed, ClassifyBand(59))
	assert.Equal(t, domain.BandGreen, ClassifyBand(100))
	assert.Equal(t, domain.BandRed, ClassifyBand(40))
}

func TestGuidance_EveryBand(t *testing.T) {
	for _, b := range domain.Bands {
		assert.NotEmpty(t, Guidance(b), b)
	}
	assert.Equal(t, "Execute as planned; optional top set if it feels great.", Guidance(domain.BandGreen))
	assert.Equal(t, "Swap to low-intensity recovery: mobility + easy cardio.", Guidance(domain.BandRed))
}
