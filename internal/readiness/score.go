// Package readiness turns four subjective 1–5 ratings into a 40–100 score
// and a Green/Yellow/Red band used to autoregulate training volume.
package readiness

import (
	"math"

	"github.com/alexanderramin/praxis/internal/domain"
)

const (
	MinRating = 1.0
	MaxRating = 5.0

	MinScore = 40
	MaxScore = 100

	// GreenAbove is the lowest score that is still Yellow; anything higher is Green.
	GreenAbove = 85
	// YellowFrom is the lowest Yellow score; anything lower is Red.
	YellowFrom = 60
)

var guidance = map[domain.Band]string{
	domain.BandGreen:  "Execute as planned; optional top set if it feels great.",
	domain.BandYellow: "Trim volume ~15–20%, keep intensity similar.",
	domain.BandRed:    "Swap to low-intensity recovery: mobility + easy cardio.",
}

// Score computes the readiness result. It is total: missing or out-of-range
// ratings are clamped rather than rejected.
func Score(in domain.ReadinessInputs) domain.ReadinessResult {
	var sum float64
	vals := in.Values()
	for _, v := range vals {
		sum += ClampRating(v)
	}
	mean := sum / float64(len(vals))

	score := int(math.Floor(Rescale(mean) + 0.5))
	band := ClassifyBand(score)
	return domain.ReadinessResult{
		Score:    score,
		Band:     band,
		Guidance: Guidance(band),
	}
}

// ClampRating maps a rating into [1,5]. Zero, negative, and NaN count as a
// missing rating, which is scored as the worst case.
func ClampRating(v float64) float64 {
	if math.IsNaN(v) || v <= 0 {
		return MinRating
	}
	return math.Max(MinRating, math.Min(MaxRating, v))
}

// Rescale maps a mean rating from [1,5] onto [40,100] without rounding.
func Rescale(mean float64) float64 {
	return (mean-MinRating)/(MaxRating-MinRating)*float64(MaxScore-MinScore) + MinScore
}

func ClassifyBand(score int) domain.Band {
	switch {
	case score > GreenAbove:
		return domain.BandGreen
	case score >= YellowFrom:
		return domain.BandYellow
	default:
		return domain.BandRed
	}
}

// Guidance returns the fixed autoregulation advice for a band.
func Guidance(band domain.Band) string {
	return guidance[band]
}
