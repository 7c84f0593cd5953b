package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/alexanderramin/praxis/internal/readiness"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderGauge renders a readiness score as a bar like [████░░░░] 85,
// scaled over the reachable 40–100 range and colored by band.
func RenderGauge(score int, band domain.Band, width int) string {
	if width < 2 {
		width = 2
	}
	span := float64(readiness.MaxScore - readiness.MinScore)
	pct := float64(score-readiness.MinScore) / span
	pct = max(0, min(1, pct))

	filled := int(pct*float64(width) + 0.5)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("[%s] %3d", BandColor(band).Render(bar), score)
}
