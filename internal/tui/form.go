package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/burndown/internal/cli"
	"github.com/theirongolddev/burndown/internal/model"
	"github.com/theirongolddev/burndown/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// maxNewPeriods bounds the period count accepted when creating a project.
const maxNewPeriods = 366

// huhTheme styles huh forms with the active color theme.
func huhTheme() *huh.Theme {
	t := theme.Active
	h := huh.ThemeBase()

	h.Focused.Title = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	h.Focused.Description = lipgloss.NewStyle().Foreground(t.TextDim)
	h.Focused.SelectSelector = lipgloss.NewStyle().Foreground(t.Accent)
	h.Focused.SelectedOption = lipgloss.NewStyle().Foreground(t.Green)
	h.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(t.TextPrimary)
	h.Focused.FocusedButton = lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Accent).Padding(0, 1)
	h.Focused.BlurredButton = lipgloss.NewStyle().Foreground(t.TextDim).Padding(0, 1)
	h.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(t.AccentBright)
	h.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(t.Accent)
	h.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(t.TextPrimary)
	h.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(t.TextDim)
	h.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(t.Red)

	h.Blurred.Title = lipgloss.NewStyle().Foreground(t.TextDim)
	h.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(t.TextDim)
	h.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(t.TextDim)
	h.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(t.TextDim)
	h.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(t.TextDim)
	h.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(t.TextDim)

	return h
}

// projectValues is the editable text of a project form.
type projectValues struct {
	name    string
	total   string
	start   string
	end     string
	periods string // new projects only
	actuals []string
	plans   []string
}

func valuesOf(p *model.Project) *projectValues {
	return &projectValues{
		name:    p.Name(),
		total:   cli.FormatTasks(p.TotalTask()),
		start:   cli.FormatDate(p.StartDate()),
		end:     cli.FormatDate(p.EndDate()),
		periods: "0",
		actuals: padTo(p.Actuals(), p.Periods()),
		plans:   padTo(p.Plans(), p.Periods()),
	}
}

func padTo(s []string, n int) []string {
	for len(s) < n {
		s = append(s, "")
	}
	return s
}

// apply writes the form values into p. Period text is stored verbatim;
// unparsable entries are simply left out of every computation.
func (v *projectValues) apply(p *model.Project, isNew bool) error {
	total, err := parseTotal(v.total)
	if err != nil {
		return err
	}
	start, err := cli.ParseDate(strings.TrimSpace(v.start))
	if err != nil {
		return fmt.Errorf("start date: %w", err)
	}
	end, err := cli.ParseDate(strings.TrimSpace(v.end))
	if err != nil {
		return fmt.Errorf("end date: %w", err)
	}

	p.SetName(strings.TrimSpace(v.name))
	p.SetTotalTask(total)
	p.SetDates(start, end)

	if isNew {
		n, err := parsePeriods(v.periods)
		if err != nil {
			return err
		}
		for range n {
			p.AddPeriod()
		}
		return nil
	}

	for i := range min(len(v.actuals), p.Periods()) {
		if err := p.SetActual(i, v.actuals[i]); err != nil {
			return fmt.Errorf("period %d: %w", i+1, err)
		}
	}
	for i := range min(len(v.plans), p.Periods()) {
		if err := p.SetPlan(i, v.plans[i]); err != nil {
			return fmt.Errorf("period %d: %w", i+1, err)
		}
	}
	return nil
}

func parseTotal(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("total tasks %q: %w", s, err)
	}
	if v < 0 {
		return 0, errors.New("total tasks must not be negative")
	}
	return v, nil
}

func parsePeriods(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > maxNewPeriods {
		return 0, fmt.Errorf("periods must be a whole number between 0 and %d", maxNewPeriods)
	}
	return n, nil
}

func validateTotal(s string) error {
	_, err := parseTotal(s)
	return err
}

func validatePeriods(s string) error {
	_, err := parsePeriods(s)
	return err
}

func validateDate(s string) error {
	if _, err := cli.ParseDate(strings.TrimSpace(s)); err != nil {
		return errors.New("use YYYY-MM-DD format")
	}
	return nil
}

// newProjectForm builds the create/edit form. Editing an existing project
// adds a group of actual/plan inputs, one pair per period.
func newProjectForm(v *projectValues, isNew bool) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("Project name").
			Placeholder("Release 1.0").
			Value(&v.name),
		huh.NewInput().
			Title("Total tasks").
			Placeholder("100").
			Value(&v.total).
			Validate(validateTotal),
		huh.NewInput().
			Title("Start date").
			Placeholder(cli.DateLayout).
			Value(&v.start).
			Validate(validateDate),
		huh.NewInput().
			Title("End date").
			Placeholder(cli.DateLayout).
			Value(&v.end).
			Validate(validateDate),
	}
	if isNew {
		fields = append(fields, huh.NewInput().
			Title("Periods").
			Description("Empty actual/plan slots to start with").
			Placeholder("0").
			Value(&v.periods).
			Validate(validatePeriods))
	}

	groups := []*huh.Group{huh.NewGroup(fields...)}

	if len(v.actuals) > 0 {
		var periodFields []huh.Field
		for i := range v.actuals {
			periodFields = append(periodFields,
				huh.NewInput().
					Title(fmt.Sprintf("Period %d actual", i+1)).
					Value(&v.actuals[i]),
				huh.NewInput().
					Title(fmt.Sprintf("Period %d plan", i+1)).
					Value(&v.plans[i]),
			)
		}
		groups = append(groups, huh.NewGroup(periodFields...).
			Title("Periods").
			Description("Tasks done per period. Entries that are not numbers are ignored."))
	}

	return huh.NewForm(groups...).WithTheme(huhTheme()).WithShowHelp(false)
}

// newDeleteForm asks for confirmation before a project is removed.
func newDeleteForm(name string, confirmed *bool) *huh.Form {
	if name == "" {
		name = "this project"
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %s?", name)).
				Affirmative("Delete").
				Negative("Cancel").
				Value(confirmed),
		),
	).WithTheme(huhTheme()).WithShowHelp(false)
}
