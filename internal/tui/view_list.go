package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/burndown/internal/cli"
	"github.com/theirongolddev/burndown/internal/model"
	"github.com/theirongolddev/burndown/internal/tui/components"
	"github.com/theirongolddev/burndown/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

const (
	listNameW      = 24
	listRemainingW = 16
	listDatesW     = 23
	listTrendW     = 12
)

func (a App) renderList(cw, h int) string {
	t := theme.Active
	rows := a.s.Rows()

	if len(rows) == 0 {
		msg := lipgloss.NewStyle().Foreground(t.TextMuted).Render("No projects yet.") + "\n\n" +
			lipgloss.NewStyle().Foreground(t.TextDim).Render("Press ") +
			lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render("n") +
			lipgloss.NewStyle().Foreground(t.TextDim).Render(" to create one.")
		return lipgloss.Place(cw, h, lipgloss.Center, lipgloss.Center, msg)
	}

	innerW := components.CardInnerWidth(cw)
	barW := max(innerW-listNameW-listRemainingW-listDatesW-listTrendW-6, 10)
	showTrend := innerW >= listNameW+listRemainingW+listDatesW+listTrendW+barW+6
	showDates := innerW >= listNameW+listRemainingW+listDatesW+barW+4

	headStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	var b strings.Builder
	b.WriteString(headStyle.Render(fmt.Sprintf("  %-*s %-*s %*s", listNameW-2, "Project", barW+5, "Progress", listRemainingW, "Remaining")))
	if showDates {
		b.WriteString(headStyle.Render(fmt.Sprintf(" %-*s", listDatesW, "Dates")))
	}
	if showTrend {
		b.WriteString(headStyle.Render(" Trend"))
	}
	b.WriteString("\n")

	// Keep the cursor row visible
	visible := max(h-4, 1)
	offset := 0
	if a.cursor >= visible {
		offset = a.cursor - visible + 1
	}

	for i := offset; i < len(rows) && i < offset+visible; i++ {
		b.WriteString(a.renderListRow(rows[i], i == a.cursor, barW, showDates, showTrend))
		b.WriteString("\n")
	}

	return components.ContentCard("Projects", strings.TrimRight(b.String(), "\n"), cw)
}

func (a App) renderListRow(p *model.Project, selected bool, barW int, showDates, showTrend bool) string {
	t := theme.Active

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	marker := "  "
	if selected {
		nameStyle = nameStyle.Foreground(t.AccentBright).Bold(true)
		marker = lipgloss.NewStyle().Foreground(t.Accent).Render("▸ ")
	}
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	remaining := fmt.Sprintf("%s / %s", cli.FormatTasks(p.RemainingTasks()), cli.FormatTasks(p.TotalTask()))

	row := marker +
		nameStyle.Render(fmt.Sprintf("%-*s", listNameW-2, cli.Truncate(displayName(p), listNameW-2))) + " " +
		components.ProgressBar(p.Progress(), barW) + " " +
		mutedStyle.Render(fmt.Sprintf("%*s", listRemainingW, cli.Truncate(remaining, listRemainingW)))
	if showDates {
		dates := cli.FormatDate(p.StartDate()) + " → " + cli.FormatDate(p.EndDate())
		row += " " + mutedStyle.Render(fmt.Sprintf("%-*s", listDatesW, dates))
	}
	if showTrend {
		row += " " + components.Sparkline(p.ActualRemaining(), t.Actual)
	}
	return row
}
