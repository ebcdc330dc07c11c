// Package model defines the burndown project record and the project collection.
package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/theirongolddev/burndown/internal/burndown"

	"github.com/google/uuid"
)

// ErrPeriodOutOfRange is returned by index-based period mutators.
var ErrPeriodOutOfRange = errors.New("period index out of range")

// Project is one tracked task list: a total, a date range and per-period
// actual/plan entries kept as the free text the user typed.
//
// Project is not safe for concurrent use.
type Project struct {
	id        uuid.UUID
	name      string
	totalTask float64
	startDate time.Time
	endDate   time.Time
	actuals   []string
	plans     []string

	obs observers
}

// NewProject returns an empty project whose range starts and ends on now's date.
func NewProject(now time.Time) *Project {
	day := truncateDay(now)
	return &Project{
		id:        uuid.New(),
		startDate: day,
		endDate:   day,
	}
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (p *Project) ID() uuid.UUID        { return p.id }
func (p *Project) Name() string         { return p.name }
func (p *Project) TotalTask() float64   { return p.totalTask }
func (p *Project) StartDate() time.Time { return p.startDate }
func (p *Project) EndDate() time.Time   { return p.endDate }

// Actuals returns a copy of the actual period entries.
func (p *Project) Actuals() []string { return append([]string(nil), p.actuals...) }

// Plans returns a copy of the plan period entries.
func (p *Project) Plans() []string { return append([]string(nil), p.plans...) }

// Periods is the number of period slots.
func (p *Project) Periods() int { return max(len(p.actuals), len(p.plans)) }

// Subscribe registers fn to run after every mutation. The returned func
// removes the registration.
func (p *Project) Subscribe(fn func(Change)) (unsubscribe func()) {
	return p.obs.subscribe(fn)
}

func (p *Project) SetName(name string) {
	p.name = name
	p.obs.notify(ChangeName)
}

// SetTotalTask sets the total; negative values are stored as 0.
func (p *Project) SetTotalTask(total float64) {
	p.totalTask = max(0, total)
	p.obs.notify(ChangeTotal)
}

func (p *Project) SetStartDate(t time.Time) {
	p.startDate = t
	p.obs.notify(ChangeDates)
}

func (p *Project) SetEndDate(t time.Time) {
	p.endDate = t
	p.obs.notify(ChangeDates)
}

// SetDates sets both ends of the range with a single notification.
func (p *Project) SetDates(start, end time.Time) {
	p.startDate = start
	p.endDate = end
	p.obs.notify(ChangeDates)
}

// SetActual replaces the actual entry of period i.
func (p *Project) SetActual(i int, text string) error {
	if i < 0 || i >= len(p.actuals) {
		return fmt.Errorf("actual %d of %d: %w", i, len(p.actuals), ErrPeriodOutOfRange)
	}
	p.actuals[i] = text
	p.obs.notify(ChangeActual)
	return nil
}

// SetPlan replaces the plan entry of period i.
func (p *Project) SetPlan(i int, text string) error {
	if i < 0 || i >= len(p.plans) {
		return fmt.Errorf("plan %d of %d: %w", i, len(p.plans), ErrPeriodOutOfRange)
	}
	p.plans[i] = text
	p.obs.notify(ChangePlan)
	return nil
}

// AddPeriod appends an empty slot to both the actual and plan entries.
func (p *Project) AddPeriod() {
	p.actuals = append(p.actuals, "")
	p.plans = append(p.plans, "")
	p.obs.notify(ChangePeriods)
}

// RemovePeriod drops slot i from whichever sequences hold it.
func (p *Project) RemovePeriod(i int) error {
	if i < 0 || i >= p.Periods() {
		return fmt.Errorf("remove period %d of %d: %w", i, p.Periods(), ErrPeriodOutOfRange)
	}
	if i < len(p.actuals) {
		p.actuals = append(p.actuals[:i], p.actuals[i+1:]...)
	}
	if i < len(p.plans) {
		p.plans = append(p.plans[:i], p.plans[i+1:]...)
	}
	p.obs.notify(ChangePeriods)
	return nil
}

// Summary reduces the actual entries against the total.
func (p *Project) Summary() burndown.Summary {
	return burndown.Summarize(burndown.ParseSeries(p.actuals), p.totalTask)
}

// Completed is the sum of all parsable actual entries.
func (p *Project) Completed() float64 { return p.Summary().Completed }

// Progress is the completed share of the total, in [0, 1]. A project with
// no total reports 0.
func (p *Project) Progress() float64 { return p.Summary().Progress }

// RemainingTasks is the work still open, in [0, total].
func (p *Project) RemainingTasks() float64 { return p.Summary().Remaining }

// ActualRemaining is the remaining work after each parsable actual entry.
func (p *Project) ActualRemaining() []float64 {
	return burndown.RemainingSeries(burndown.ParseSeries(p.actuals), p.totalTask)
}

// PlanRemaining is the remaining work after each parsable plan entry.
func (p *Project) PlanRemaining() []float64 {
	return burndown.RemainingSeries(burndown.ParseSeries(p.plans), p.totalTask)
}

// Ideal is the straight-line target over the project's date range.
func (p *Project) Ideal() burndown.IdealLine {
	return burndown.NewIdealLine(p.startDate, p.endDate, p.totalTask)
}

// Chart lays the project out on a width x height surface.
func (p *Project) Chart(width, height float64) burndown.Chart {
	layout := burndown.NewLayout(width, height, p.Ideal().Days, p.totalTask)
	return burndown.Plot(layout, p.ActualRemaining(), p.PlanRemaining())
}
