package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding of the list and chart screens. It satisfies
// help.KeyMap so the status bar and help overlay stay in sync with Update.
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Open       key.Binding
	Back       key.Binding
	New        key.Binding
	Edit       key.Binding
	Delete     key.Binding
	ByProgress key.Binding
	ByRemain   key.Binding
	AddPeriod  key.Binding
	DropPeriod key.Binding
	Help       key.Binding
	Quit       key.Binding

	chart bool
}

func newKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "chart")),
		Back:       key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		New:        key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		ByProgress: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "sort progress")),
		ByRemain:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "sort remaining")),
		AddPeriod:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add period")),
		DropPeriod: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "drop last period")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// forScreen returns a copy whose help lists the bindings of the chart
// screen or the list screen.
func (k keyMap) forScreen(chart bool) keyMap {
	k.chart = chart
	return k
}

func (k keyMap) ShortHelp() []key.Binding {
	if k.chart {
		return []key.Binding{k.Back, k.AddPeriod, k.DropPeriod, k.Edit, k.Help, k.Quit}
	}
	return []key.Binding{k.Open, k.New, k.ByProgress, k.ByRemain, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	if k.chart {
		return [][]key.Binding{
			{k.Back, k.Edit, k.Delete},
			{k.AddPeriod, k.DropPeriod},
			{k.Help, k.Quit},
		}
	}
	return [][]key.Binding{
		{k.Up, k.Down, k.Open},
		{k.New, k.Edit, k.Delete},
		{k.ByProgress, k.ByRemain},
		{k.Help, k.Quit},
	}
}
