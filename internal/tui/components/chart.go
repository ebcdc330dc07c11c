package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/burndown/internal/burndown"
	"github.com/theirongolddev/burndown/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Series glyphs, lowest drawing priority first.
const (
	glyphIdeal      = '·'
	glyphPlan       = '∘'
	glyphPlanPoint  = 'o'
	glyphActual     = '•'
	glyphActualMark = '◆'
)

// chartFooterRows is the x-axis rule, its labels and the legend.
const chartFooterRows = 3

type cell struct {
	glyph rune
	color lipgloss.Color
	prio  int
}

// ChartSurface returns the plotting surface, in cells, left inside a
// width x height chart once axes, labels and legend are drawn. Lay the
// burndown out on this surface before calling BurndownChart.
func ChartSurface(total float64, width, height int) (w, h float64) {
	cols := max(width-yLabelWidth(total)-1, 2)
	rows := max(height-chartFooterRows, 2)
	return float64(cols - 1), float64(rows - 1)
}

func yLabelWidth(total float64) int {
	return max(len(formatChartLabel(total))+1, 4)
}

// BurndownChart rasterizes a laid-out burndown onto a terminal grid. The
// chart's layout is interpreted in cells: X in columns, Y in rows.
// xLabels are printed under the left and right ends of the x-axis.
func BurndownChart(c burndown.Chart, xLabels [2]string) string {
	t := theme.Active
	l := c.Layout

	cols := int(math.Round(l.Width)) + 1
	rows := int(math.Round(l.Height)) + 1
	if cols < 2 || rows < 2 {
		return ""
	}

	grid := make([][]cell, rows)
	for r := range grid {
		grid[r] = make([]cell, cols)
	}
	put := func(x, y int, glyph rune, color lipgloss.Color, prio int) {
		if y < 0 || y >= rows || x < 0 || x >= cols {
			return
		}
		if grid[y][x].prio > prio {
			return
		}
		grid[y][x] = cell{glyph: glyph, color: color, prio: prio}
	}
	line := func(from, to burndown.Point, glyph rune, color lipgloss.Color, prio int) {
		x0, y0 := round(from.X), round(from.Y)
		x1, y1 := round(to.X), round(to.Y)
		dx, dy := abs(x1-x0), -abs(y1-y0)
		sx, sy := sign(x1-x0), sign(y1-y0)
		e := dx + dy
		for {
			put(x0, y0, glyph, color, prio)
			if x0 == x1 && y0 == y1 {
				return
			}
			e2 := 2 * e
			if e2 >= dy {
				e += dy
				x0 += sx
			}
			if e2 <= dx {
				e += dx
				y0 += sy
			}
		}
	}
	path := func(pts []burndown.Point, glyph, mark rune, color lipgloss.Color, prio int) {
		for i := 1; i < len(pts); i++ {
			line(pts[i-1], pts[i], glyph, color, prio)
		}
		for _, p := range pts {
			put(round(p.X), round(p.Y), mark, color, prio+1)
		}
	}

	line(c.Ideal.From, c.Ideal.To, glyphIdeal, t.Ideal, 1)
	if c.ShowPlan {
		path(c.Plan, glyphPlan, glyphPlanPoint, t.Plan, 2)
	}
	if c.ShowActual {
		path(c.Actual, glyphActual, glyphActualMark, t.Actual, 4)
	}

	yLabelW := yLabelWidth(l.Total)
	tickLabels := map[int]string{
		0:        formatChartLabel(max(l.Total, 0)),
		rows - 1: "0",
	}
	if rows >= 5 {
		tickLabels[(rows-1)/2] = formatChartLabel(max(l.Total, 0) * float64(rows-1-(rows-1)/2) / float64(rows-1))
	}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	var b strings.Builder

	for r := 0; r < rows; r++ {
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, tickLabels[r])))
		b.WriteString(axisStyle.Render("│"))
		for _, cl := range grid[r] {
			if cl.glyph == 0 {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(lipgloss.NewStyle().Foreground(cl.color).Render(string(cl.glyph)))
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat(" ", yLabelW))
	b.WriteString(axisStyle.Render("└" + strings.Repeat("─", cols)))
	b.WriteString("\n")

	left, right := xLabels[0], xLabels[1]
	gap := max(1, cols+1-lipgloss.Width(left)-lipgloss.Width(right))
	b.WriteString(strings.Repeat(" ", yLabelW))
	b.WriteString(axisStyle.Render(left + strings.Repeat(" ", gap) + right))
	b.WriteString("\n")

	b.WriteString(strings.Repeat(" ", yLabelW+1))
	b.WriteString(ChartLegend())

	return b.String()
}

// ChartLegend renders the series key.
func ChartLegend() string {
	t := theme.Active
	item := func(glyph rune, color lipgloss.Color, label string) string {
		return lipgloss.NewStyle().Foreground(color).Render(string(glyph)) + " " +
			lipgloss.NewStyle().Foreground(t.TextMuted).Render(label)
	}
	return item(glyphIdeal, t.Ideal, "Ideal") + "  " +
		item(glyphPlanPoint, t.Plan, "Plan") + "  " +
		item(glyphActualMark, t.Actual, "Actual")
}

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	var buf strings.Builder
	buf.Grow(len(values) * 3)
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		idx = min(max(idx, 0), len(blocks)-1)
		buf.WriteRune(blocks[idx])
	}

	return lipgloss.NewStyle().Foreground(color).Render(buf.String())
}

func formatChartLabel(v float64) string {
	switch {
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("%.0fM", v/1e6)
		}
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%.0fk", v/1e3)
		}
		return fmt.Sprintf("%.1fk", v/1e3)
	case v == math.Trunc(v):
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.1f", v)
	}
}

func round(v float64) int { return int(math.Round(v)) }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
