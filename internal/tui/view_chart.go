package tui

import (
	"fmt"

	"github.com/theirongolddev/burndown/internal/burndown"
	"github.com/theirongolddev/burndown/internal/cli"
	"github.com/theirongolddev/burndown/internal/model"
	"github.com/theirongolddev/burndown/internal/tui/components"
	"github.com/theirongolddev/burndown/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// minChartRows is the smallest chart body worth drawing.
const minChartRows = 6

func (a App) renderChartScreen(cw, h int) string {
	p := a.current()
	if p == nil {
		return ""
	}

	cards := components.MetricCardRow(projectMetrics(p), cw)
	out := cards

	// Card border and title take three rows.
	chartH := h - lipgloss.Height(cards) - 3
	if a.chartHeight > 0 {
		chartH = min(chartH, a.chartHeight)
	}
	if chartH >= minChartRows {
		chartW := components.CardInnerWidth(cw)
		if a.chartWidth > 0 {
			chartW = min(chartW, a.chartWidth)
		}
		title := fmt.Sprintf("%s · %s → %s", displayName(p), cli.FormatDate(p.StartDate()), cli.FormatDate(p.EndDate()))
		out += "\n" + components.ContentCard(title, renderBurndown(p, chartW, chartH), cw)
	}

	if table := renderPeriods(p, h-lipgloss.Height(out)); table != "" {
		out += "\n" + table
	}
	return out
}

func projectMetrics(p *model.Project) []components.Metric {
	days := p.Ideal().Days
	return []components.Metric{
		{Label: "Progress", Value: cli.FormatPercent(p.Progress())},
		{Label: "Remaining", Value: cli.FormatTasks(p.RemainingTasks()), Delta: "of " + cli.FormatTasks(p.TotalTask())},
		{Label: "Completed", Value: cli.FormatTasks(p.Completed())},
		{Label: "Duration", Value: cli.FormatDays(days), Delta: fmt.Sprintf("%d periods", p.Periods())},
	}
}

// renderBurndown lays p out on the terminal surface left inside a
// width x height chart and draws it.
func renderBurndown(p *model.Project, width, height int) string {
	w, h := components.ChartSurface(p.TotalTask(), width, height)
	c := p.Chart(w, h)
	return components.BurndownChart(c, [2]string{"day 0", fmt.Sprintf("day %d", c.Layout.Days)})
}

// renderPeriods lists the raw period entries, dimming those the chart
// ignores. Returns "" when no row fits.
func renderPeriods(p *model.Project, h int) string {
	if p.Periods() == 0 || h < 6 {
		return ""
	}
	t := theme.Active
	dim := lipgloss.NewStyle().Foreground(t.TextDim)
	val := lipgloss.NewStyle().Foreground(t.TextPrimary)

	cell := func(s string) string {
		if s == "" {
			return dim.Render("-")
		}
		if len(burndown.Parsed([]string{s})) == 0 {
			return dim.Render(s + " (ignored)")
		}
		return val.Render(s)
	}

	actuals, plans := p.Actuals(), p.Plans()
	fit := min(p.Periods(), h-5)
	tbl := cli.Table{Headers: []string{"Period", "Actual", "Plan"}}
	for i := range fit {
		var act, plan string
		if i < len(actuals) {
			act = actuals[i]
		}
		if i < len(plans) {
			plan = plans[i]
		}
		tbl.Rows = append(tbl.Rows, []string{fmt.Sprintf("%d", i+1), cell(act), cell(plan)})
	}
	if fit < p.Periods() {
		tbl.Title = fmt.Sprintf("Periods (%d of %d)", fit, p.Periods())
	}
	return cli.RenderTable(tbl)
}
