package domain

// ReadinessInputs holds the four 1–5 self ratings. A zero, negative, or NaN
// value is treated as a missing rating.
type ReadinessInputs struct {
	Sleep    float64 `json:"sleep"`
	Stress   float64 `json:"stress"`
	Energy   float64 `json:"energy"`
	Soreness float64 `json:"soreness"`
}

// DefaultReadinessInputs mirrors the pre-filled check-in form.
func DefaultReadinessInputs() ReadinessInputs {
	return ReadinessInputs{Sleep: 4, Stress: 4, Energy: 4, Soreness: 4}
}

// Values returns the ratings in canonical order.
func (in ReadinessInputs) Values() [4]float64 {
	return [4]float64{in.Sleep, in.Stress, in.Energy, in.Soreness}
}

type ReadinessResult struct {
	Score    int    `json:"score"`
	Band     Band   `json:"band"`
	Guidance string `json:"guidance"`
}
