package readiness

import (
	"testing"

	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// forEachRating visits every integer rating combination in [1,5]^4.
func forEachRating(fn func(r [4]float64)) {
	for a := 1; a <= 5; a++ {
		for b := 1; b <= 5; b++ {
			for c := 1; c <= 5; c++ {
				for d := 1; d <= 5; d++ {
					fn([4]float64{float64(a), float64(b), float64(c), float64(d)})
				}
			}
		}
	}
}

func fromArray(r [4]float64) domain.ReadinessInputs {
	return domain.ReadinessInputs{Sleep: r[0], Stress: r[1], Energy: r[2], Soreness: r[3]}
}

func TestScoreProperty_RangeAndBand(t *testing.T) {
	forEachRating(func(r [4]float64) {
		res := Score(fromArray(r))
		require.GreaterOrEqual(t, res.Score, MinScore, "ratings %v", r)
		require.LessOrEqual(t, res.Score, MaxScore, "ratings %v", r)
		require.Equal(t, ClassifyBand(res.Score), res.Band, "ratings %v", r)
		require.Equal(t, Guidance(res.Band), res.Guidance)
	})
}

func TestScoreProperty_MonotonicInEachRating(t *testing.T) {
	forEachRating(func(r [4]float64) {
		base := Score(fromArray(r)).Score
		for i := range r {
			if r[i] == MaxRating {
				continue
			}
			bumped := r
			bumped[i]++
			require.GreaterOrEqual(t, Score(fromArray(bumped)).Score, base, "raising rating %d of %v", i, r)
		}
	})
}

func TestScoreProperty_ExtremesOnlyAtCorners(t *testing.T) {
	forEachRating(func(r [4]float64) {
		score := Score(fromArray(r)).Score
		allFive := r == [4]float64{5, 5, 5, 5}
		allOne := r == [4]float64{1, 1, 1, 1}
		assert.Equal(t, allFive, score == MaxScore, "ratings %v", r)
		assert.Equal(t, allOne, score == MinScore, "ratings %v", r)
	})
}
