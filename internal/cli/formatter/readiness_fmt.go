package formatter

import (
	"fmt"

	"github.com/alexanderramin/praxis/internal/domain"
)

// FormatReadiness renders the readiness score, band, and guidance.
func FormatReadiness(r domain.ReadinessResult) string {
	return fmt.Sprintf("%s  %s  %s\n%s\n",
		Bold("Readiness score:"),
		RenderGauge(r.Score, r.Band, 20),
		BandIndicator(r.Band),
		Dim(fmt.Sprintf("Band: %s — %s", r.Band, r.Guidance)),
	)
}

// FormatAutoregulation is the one-line reminder closing a plan.
func FormatAutoregulation(r domain.ReadinessResult) string {
	return fmt.Sprintf("Autoregulation: %s day — %s\n", BandColor(r.Band).Render(string(r.Band)), r.Guidance)
}
