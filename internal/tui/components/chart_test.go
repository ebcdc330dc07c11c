package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/burndown/internal/burndown"
)

// cellAt returns the glyph drawn at surface column x on chart row y.
func cellAt(t *testing.T, out string, total float64, x, y int) rune {
	t.Helper()
	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), y)
	row := []rune(lines[y])
	col := yLabelWidth(total) + 1 + x
	require.Greater(t, len(row), col)
	return row[col]
}

func TestBurndownChartShape(t *testing.T) {
	withASCII(t)

	c := burndown.Plot(burndown.NewLayout(10, 4, 10, 100), []float64{80, 50}, []float64{60, 40})
	out := BurndownChart(c, [2]string{"Jan 01", "Jan 11"})
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 5+chartFooterRows)
	assert.True(t, strings.HasPrefix(lines[0], " 100│"))
	assert.True(t, strings.HasPrefix(lines[4], "   0│"))
	assert.Contains(t, lines[2], "50│")
	assert.Contains(t, lines[5], "└")
	assert.Contains(t, lines[6], "Jan 01")
	assert.Contains(t, lines[6], "Jan 11")
	assert.Contains(t, lines[7], "Ideal")
	assert.Contains(t, lines[7], "Plan")
	assert.Contains(t, lines[7], "Actual")

	assert.Equal(t, glyphIdeal, cellAt(t, out, 100, 0, 0))
	assert.Equal(t, glyphIdeal, cellAt(t, out, 100, 10, 4))
	assert.Equal(t, glyphActualMark, cellAt(t, out, 100, 0, 1))
	assert.Equal(t, glyphActualMark, cellAt(t, out, 100, 1, 2))
}

func TestBurndownChartActualOverridesIdeal(t *testing.T) {
	withASCII(t)

	c := burndown.Plot(burndown.NewLayout(10, 10, 10, 10), []float64{10, 9, 8}, nil)
	out := BurndownChart(c, [2]string{"", ""})

	assert.Equal(t, glyphActualMark, cellAt(t, out, 10, 0, 0))
	assert.Equal(t, glyphActualMark, cellAt(t, out, 10, 2, 2))
	assert.Equal(t, glyphIdeal, cellAt(t, out, 10, 5, 5))
}

func TestBurndownChartHidesSeries(t *testing.T) {
	withASCII(t)

	c := burndown.Plot(burndown.NewLayout(10, 4, 10, 100), nil, []float64{0, 0})
	require.False(t, c.ShowActual)
	require.False(t, c.ShowPlan)

	out := BurndownChart(c, [2]string{"", ""})
	body := strings.Join(strings.Split(out, "\n")[:5], "\n")
	assert.NotContains(t, body, string(glyphActualMark))
	assert.NotContains(t, body, string(glyphPlanPoint))
	assert.Contains(t, body, string(glyphIdeal))
}

func TestBurndownChartFitsSurface(t *testing.T) {
	withASCII(t)

	w, h := ChartSurface(100, 60, 16)
	assert.Equal(t, 54.0, w)
	assert.Equal(t, 12.0, h)

	c := burndown.Plot(burndown.NewLayout(w, h, 9, 100), []float64{80, 60, 30}, []float64{90, 80})
	out := BurndownChart(c, [2]string{"2026-01-01", "2026-01-10"})
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 16)
	for i, line := range lines {
		assert.LessOrEqual(t, lipgloss.Width(line), 60, "line %d", i)
	}
}

func TestBurndownChartTooSmall(t *testing.T) {
	c := burndown.Plot(burndown.NewLayout(0, 0, 1, 10), nil, nil)
	assert.Empty(t, BurndownChart(c, [2]string{"", ""}))
}

func TestFormatChartLabel(t *testing.T) {
	assert.Equal(t, "100", formatChartLabel(100))
	assert.Equal(t, "2.5", formatChartLabel(2.5))
	assert.Equal(t, "12k", formatChartLabel(12000))
	assert.Equal(t, "1.5k", formatChartLabel(1500))
	assert.Equal(t, "3M", formatChartLabel(3e6))
}

func TestSparkline(t *testing.T) {
	withASCII(t)

	assert.Empty(t, Sparkline(nil, "#fff"))
	assert.Equal(t, "█▄▁", Sparkline([]float64{100, 50, 0}, "#fff"))
}
