package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/burndown/internal/burndown"
)

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Project", "Left"},
		Rows: [][]string{
			{"alpha", "5"},
			{"---"},
			{"b", "120"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 7)
	width := lipgloss.Width(lines[0])
	for i, line := range lines {
		assert.Equalf(t, width, lipgloss.Width(line), "line %d width", i)
	}
	assert.Contains(t, out, "alpha")
	assert.Contains(t, out, "    5 ")
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(Table{}))
}

func TestRenderProgressBar(t *testing.T) {
	out := RenderProgressBar(0.5, 10)
	assert.Contains(t, out, "50%")
	assert.Equal(t, 5, strings.Count(out, "█"))

	assert.Contains(t, RenderProgressBar(3, 4), "100%")
}

func TestRenderSVG(t *testing.T) {
	l := burndown.NewLayout(300, 200, 3, 90)
	c := burndown.Plot(l, []float64{60, 30}, []float64{45})

	var buf bytes.Buffer
	require.NoError(t, RenderSVG(&buf, "Sprint <1>", c, DefaultSVGStyle))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `width="380" height="280"`)
	assert.Contains(t, out, "Sprint &lt;1&gt;")
	assert.Contains(t, out, `x1="0" y1="0" x2="300" y2="200"`)
	assert.Contains(t, out, `class="actual" points="0,66.67 100,133.33"`)
	assert.Contains(t, out, `class="plan" points="0,100"`)
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
}

func TestRenderSVG_SkipsGuardedSeries(t *testing.T) {
	c := burndown.Plot(burndown.NewLayout(100, 100, 1, 10), nil, []float64{0})

	var buf bytes.Buffer
	require.NoError(t, RenderSVG(&buf, "", c, DefaultSVGStyle))
	out := buf.String()

	assert.Contains(t, out, `class="ideal"`)
	assert.NotContains(t, out, `class="actual"`)
	assert.NotContains(t, out, `class="plan"`)
}

func TestSVGSurface(t *testing.T) {
	w, h := SVGSurface(640, 360)
	assert.Equal(t, 560.0, w)
	assert.Equal(t, 280.0, h)

	w, h = SVGSurface(20, 20)
	assert.Equal(t, 10.0, w)
	assert.Equal(t, 10.0, h)
}
