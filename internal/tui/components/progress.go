package components

import (
	"fmt"

	"github.com/theirongolddev/burndown/internal/cli"
	"github.com/theirongolddev/burndown/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForProgress returns red/orange/yellow/green as a project nears completion.
func ColorForProgress(pct float64) lipgloss.Color {
	t := theme.Active
	switch {
	case pct >= 1:
		return t.Green
	case pct >= 0.5:
		return t.Yellow
	case pct > 0:
		return t.Orange
	default:
		return t.Red
	}
}

// ProgressBar renders a solid progress bar followed by its percentage.
func ProgressBar(pct float64, width int) string {
	t := theme.Active
	pct = min(max(pct, 0), 1)
	color := ColorForProgress(pct)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(max(width, 4)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	return bar.ViewAs(pct) + " " + pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}

// LabeledProgressBar renders a fixed-width label before a ProgressBar.
// The bar takes whatever width is left after the label and percentage.
func LabeledProgressBar(label string, pct float64, labelW, width int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	barW := max(width-labelW-6, 4)
	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, cli.Truncate(label, labelW))) + " " + ProgressBar(pct, barW)
}
