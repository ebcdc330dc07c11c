// Package tui provides the interactive Bubble Tea host for burndown projects.
package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/theirongolddev/burndown/internal/config"
	"github.com/theirongolddev/burndown/internal/model"
	"github.com/theirongolddev/burndown/internal/tui/components"
	"github.com/theirongolddev/burndown/internal/tui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

type screen int

const (
	screenList screen = iota
	screenChart
	screenForm
	screenConfirm
)

const (
	minTerminalWidth = 50
	maxContentWidth  = 140
	minContentHeight = 5
)

// App is the root Bubble Tea model.
type App struct {
	s    *session
	keys keyMap
	help help.Model
	now  func() time.Time

	// UI state
	width    int
	height   int
	screen   screen
	prev     screen // screen to return to when a form closes
	cursor   int
	selected uuid.UUID
	showHelp bool

	// Chart size limits from config
	chartWidth  int
	chartHeight int

	// Active huh form (project editor or delete confirmation)
	form      *huh.Form
	formVals  *projectValues
	editing   *model.Project
	isNew     bool
	confirmed *bool
}

// NewApp creates the TUI over coll. Sorting state lives in coll; the
// chart size caps come from cfg.
func NewApp(coll *model.Collection, cfg config.Config, log *slog.Logger) App {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	a := App{
		s:           newSession(coll, log),
		keys:        newKeyMap(),
		help:        help.New(),
		now:         time.Now,
		chartWidth:  cfg.Chart.Width,
		chartHeight: cfg.Chart.Height,
	}
	a.help.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Active.Accent)
	a.help.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Active.TextMuted)
	a.help.Styles.FullKey = a.help.Styles.ShortKey
	a.help.Styles.FullDesc = a.help.Styles.ShortDesc
	a.syncCursor()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		if a.form != nil {
			a.form = a.form.WithWidth(min(msg.Width, maxContentWidth)).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Forms intercept all other keys
		if a.form != nil {
			return a.updateForm(msg)
		}

		if key.Matches(msg, a.keys.Help) {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if a.screen == screenChart {
			return a.updateChart(msg)
		}
		return a.updateList(msg)
	}

	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := a.s.Rows()

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
			a.rememberCursor()
		}
	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(rows)-1 {
			a.cursor++
			a.rememberCursor()
		}
	case key.Matches(msg, a.keys.Open):
		if len(rows) > 0 {
			a.screen = screenChart
		}
	case key.Matches(msg, a.keys.New):
		return a.openProjectForm(model.NewProject(a.now()), true)
	case key.Matches(msg, a.keys.Edit):
		if p := a.current(); p != nil {
			return a.openProjectForm(p, false)
		}
	case key.Matches(msg, a.keys.Delete):
		if p := a.current(); p != nil {
			return a.openDeleteForm(p)
		}
	case key.Matches(msg, a.keys.ByProgress):
		a.s.coll.SelectSortKey(model.SortByProgress)
	case key.Matches(msg, a.keys.ByRemain):
		a.s.coll.SelectSortKey(model.SortByRemaining)
	}

	a.syncCursor()
	return a, nil
}

func (a App) updateChart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := a.current()
	if p == nil {
		a.screen = screenList
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Back):
		a.screen = screenList
	case key.Matches(msg, a.keys.AddPeriod):
		p.AddPeriod()
		a.s.status = fmt.Sprintf("Added period %d", p.Periods())
	case key.Matches(msg, a.keys.DropPeriod):
		if n := p.Periods(); n > 0 {
			if err := p.RemovePeriod(n - 1); err != nil {
				a.s.log.Error("remove period", "project", p.ID(), "err", err)
				a.s.status = err.Error()
				break
			}
			a.s.status = fmt.Sprintf("Removed period %d", n)
		}
	case key.Matches(msg, a.keys.Edit):
		return a.openProjectForm(p, false)
	case key.Matches(msg, a.keys.Delete):
		return a.openDeleteForm(p)
	}

	a.syncCursor()
	return a, nil
}

func (a App) openProjectForm(p *model.Project, isNew bool) (tea.Model, tea.Cmd) {
	a.prev = a.screen
	a.screen = screenForm
	a.editing = p
	a.isNew = isNew
	a.formVals = valuesOf(p)
	a.form = newProjectForm(a.formVals, isNew)
	if a.width > 0 {
		a.form = a.form.WithWidth(min(a.width, maxContentWidth)).WithHeight(a.height)
	}
	return a, a.form.Init()
}

func (a App) openDeleteForm(p *model.Project) (tea.Model, tea.Cmd) {
	a.prev = a.screen
	a.screen = screenConfirm
	a.editing = p
	a.confirmed = new(bool)
	a.form = newDeleteForm(p.Name(), a.confirmed)
	if a.width > 0 {
		a.form = a.form.WithWidth(min(a.width, maxContentWidth)).WithHeight(a.height)
	}
	return a, a.form.Init()
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		return a.closeForm(), nil
	}

	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		return a.completeForm(), nil
	case huh.StateAborted:
		return a.closeForm(), nil
	}
	return a, cmd
}

// completeForm applies a finished form to the collection.
func (a App) completeForm() App {
	p := a.editing
	switch a.screen {
	case screenForm:
		if err := a.formVals.apply(p, a.isNew); err != nil {
			a.s.log.Warn("project form rejected", "project", p.ID(), "err", err)
			a.s.status = err.Error()
			break
		}
		if !a.isNew {
			a.s.status = fmt.Sprintf("Saved %s", displayName(p))
			a.s.log.Info("project saved", "project", p.ID(), "name", p.Name())
			break
		}
		if err := a.s.coll.Add(p); err != nil {
			a.s.log.Error("add project", "project", p.ID(), "err", err)
			a.s.status = err.Error()
			break
		}
		a.s.status = fmt.Sprintf("Created %s", displayName(p))
		a.s.log.Info("project created", "project", p.ID(), "name", p.Name())
		a.selected = p.ID()

	case screenConfirm:
		if a.confirmed == nil || !*a.confirmed {
			break
		}
		if err := a.s.coll.Remove(p.ID()); err != nil {
			if !errors.Is(err, model.ErrProjectNotFound) {
				a.s.log.Error("remove project", "project", p.ID(), "err", err)
			}
			a.s.status = err.Error()
			break
		}
		a.s.status = fmt.Sprintf("Deleted %s", displayName(p))
		a.s.log.Info("project deleted", "project", p.ID(), "name", p.Name())
		a.prev = screenList
	}
	return a.closeForm()
}

func (a App) closeForm() App {
	a.screen = a.prev
	a.form = nil
	a.formVals = nil
	a.editing = nil
	a.confirmed = nil
	a.isNew = false
	a.syncCursor()
	return a
}

// current is the project under the cursor, or nil.
func (a App) current() *model.Project {
	rows := a.s.Rows()
	if a.cursor < 0 || a.cursor >= len(rows) {
		return nil
	}
	return rows[a.cursor]
}

func (a *App) rememberCursor() {
	if p := a.current(); p != nil {
		a.selected = p.ID()
	}
}

// syncCursor moves the cursor onto the selected project after the rows
// were re-sorted, or clamps it when that project is gone.
func (a *App) syncCursor() {
	rows := a.s.Rows()
	if i := a.s.indexOf(a.selected); i >= 0 {
		a.cursor = i
	}
	a.cursor = min(a.cursor, len(rows)-1)
	a.cursor = max(a.cursor, 0)
	if p := a.current(); p != nil {
		a.selected = p.ID()
	} else if a.screen == screenChart {
		a.screen = screenList
	}
}

func displayName(p *model.Project) string {
	if strings.TrimSpace(p.Name()) == "" {
		return "(untitled)"
	}
	return p.Name()
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.form != nil {
		return a.viewForm()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  burndown needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewForm() string {
	t := theme.Active
	title := "Delete project"
	if a.screen == screenForm {
		title = "Edit project"
		if a.isNew {
			title = "New project"
		}
	}
	header := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true).Render("◈ " + title)
	hint := components.RenderStatusBar(a.width, "enter next · esc cancel", "")
	return lipgloss.JoinVertical(lipgloss.Left, header, "", a.form.View(), "", hint)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	keys := a.keys.forScreen(a.screen == screenChart)
	body := titleStyle.Render("◈ Keyboard Shortcuts") + "\n\n" +
		a.help.FullHelpView(keys.FullHelp()) + "\n\n" +
		dimStyle.Render("Press any key to close")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(body))
}

func (a App) viewMain() string {
	cw := a.contentWidth()
	h := a.height

	header := a.renderHeader(cw)

	keys := a.keys.forScreen(a.screen == screenChart)
	statusBar := components.RenderStatusBar(a.width, a.help.ShortHelpView(keys.ShortHelp()), a.s.status)

	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	if a.screen == screenChart {
		content = a.renderChartScreen(cw, contentH)
	} else {
		content = a.renderList(cw, contentH)
	}
	content = padHeight(truncateHeight(content, contentH), contentH)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (a App) renderHeader(cw int) string {
	t := theme.Active
	logo := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true).Render("◈ burndown")
	sub := lipgloss.NewStyle().Foreground(t.TextMuted).
		Render(fmt.Sprintf(" · %d projects", a.s.coll.Len()))

	left := logo + sub
	right := components.RenderSortBar(a.s.coll.SortKey(), a.s.coll.Direction())
	gap := max(cw-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right + "\n"
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Count(s, "\n") + 1
	if lines >= h {
		return s
	}
	return s + strings.Repeat("\n", h-lines)
}
