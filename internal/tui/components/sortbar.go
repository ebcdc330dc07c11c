package components

import (
	"strings"

	"github.com/theirongolddev/burndown/internal/model"
	"github.com/theirongolddev/burndown/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// SortOption is one selectable ordering in the sort bar.
type SortOption struct {
	Key      model.SortKey
	Shortcut rune
}

// SortOptions lists the orderings in display order.
var SortOptions = []SortOption{
	{Key: model.SortByProgress, Shortcut: 'p'},
	{Key: model.SortByRemaining, Shortcut: 'r'},
}

// SortOptionByKey returns the sort key bound to a shortcut, if any.
func SortOptionByKey(r rune) (model.SortKey, bool) {
	for _, o := range SortOptions {
		if o.Shortcut == r {
			return o.Key, true
		}
	}
	return 0, false
}

// RenderSortBar renders the sort options, highlighting the active key
// and showing its direction.
func RenderSortBar(active model.SortKey, dir model.Direction) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimKeyStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	parts := []string{inactiveStyle.Render("Sort:")}
	for _, o := range SortOptions {
		label := o.Key.Label()
		key := dimKeyStyle.Render("[") + keyStyle.Render(string(o.Shortcut)) + dimKeyStyle.Render("]")
		if o.Key == active {
			parts = append(parts, key+activeStyle.Render(label+" "+arrow(dir)))
			continue
		}
		parts = append(parts, key+inactiveStyle.Render(label))
	}
	return " " + strings.Join(parts, "  ")
}

func arrow(dir model.Direction) string {
	if dir == model.Descending {
		return "↓"
	}
	return "↑"
}
