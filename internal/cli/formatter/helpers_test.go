package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/praxis/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBandIndicator(t *testing.T) {
	assert.Equal(t, "● GREEN", stripANSI(BandIndicator(domain.BandGreen)))
	assert.Equal(t, "● YELLOW", stripANSI(BandIndicator(domain.BandYellow)))
	assert.Equal(t, "● RED", stripANSI(BandIndicator(domain.BandRed)))
	assert.Equal(t, "● UNKNOWN", stripANSI(BandIndicator("")))
}

func TestHeader(t *testing.T) {
	got := stripANSI(Header("Suggested exercises"))
	assert.Equal(t, "SUGGESTED EXERCISES\n"+strings.Repeat("─", 19), got)
}

func TestHumanDateFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"today", now.Add(-3 * time.Hour), "Today"},
		{"yesterday", now.Add(-24 * time.Hour), "Yesterday"},
		{"older", time.Date(2025, 12, 25, 9, 0, 0, 0, time.UTC), "Dec 25, 2025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanDateFrom(tt.input, now))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "Single-le…", Truncate("Single-leg Romanian Deadlift", 10))
	assert.Equal(t, "…", Truncate("abc", 1))
	assert.Equal(t, "abc", Truncate("abc", 0))
}

func TestWrapText(t *testing.T) {
	got := wrapText("Isometric calf/plantar holds: 30–45s × 3–5, pain ≤4–5/10.", 20)
	for _, line := range strings.Split(got, "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 20, "line %q", line)
	}
	assert.Equal(t, "Isometric calf/plantar holds: 30–45s × 3–5, pain ≤4–5/10.", strings.ReplaceAll(got, "\n", " "))
	assert.Equal(t, "", wrapText("   ", 10))
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "12345678", stripANSI(TruncID("12345678-90ab-cdef")))
	assert.Equal(t, "abc", stripANSI(TruncID("abc")))
}

func TestRenderGauge(t *testing.T) {
	tests := []struct {
		score  int
		filled int
	}{
		{40, 0},
		{70, 10},
		{85, 15},
		{100, 20},
	}
	for _, tt := range tests {
		got := stripANSI(RenderGauge(tt.score, domain.BandYellow, 20))
		assert.Equal(t, tt.filled, strings.Count(got, filledBlock), "score %d", tt.score)
		assert.Equal(t, 20-tt.filled, strings.Count(got, emptyBlock), "score %d", tt.score)
	}
	assert.True(t, strings.HasSuffix(stripANSI(RenderGauge(85, domain.BandYellow, 20)), "]  85"))
}

func TestRenderTable(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"ID", "NAME"},
		[][]string{{"pf", "Plantar Fasciitis"}, {"nsLBP", "Low Back Pain"}},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, []string{
		"ID     NAME",
		"─────  ─────────────────",
		"pf     Plantar Fasciitis",
		"nsLBP  Low Back Pain",
	}, lines)
}

func TestRenderTable_TruncatesLongCells(t *testing.T) {
	long := strings.Repeat("x", MaxCellWidth+10)
	out := stripANSI(RenderTable([]string{"A"}, [][]string{{long}}))
	assert.NotContains(t, out, long)
	assert.Contains(t, out, "…")
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestRenderTree(t *testing.T) {
	out := stripANSI(RenderTree([]TreeItem{
		{Title: "Phase 1", Detail: "1/2"},
		{Title: "first", Level: 1},
		{Title: "second", Level: 1, IsLast: true},
		{Title: "Phase 2", Detail: "2/2"},
	}, 0))

	assert.Contains(t, out, "├─ first")
	assert.Contains(t, out, "└─ second")
	assert.Contains(t, out, "[ 1/2 ]")
	assert.Empty(t, RenderTree(nil, 0))
}
