package burndown

import "time"

// IdealLine is the straight-line target from total work on day 0 to no work
// left on the final day.
type IdealLine struct {
	Total float64
	Days  int
}

// NewIdealLine derives the ideal trajectory for a date range. Days is the
// whole calendar-day span clamped to at least 1.
func NewIdealLine(start, end time.Time, total float64) IdealLine {
	return IdealLine{
		Total: total,
		Days:  max(1, WholeDays(start, end)),
	}
}

// At returns the ideal remaining work on the given day, clamped to the
// line's endpoints.
func (l IdealLine) At(day float64) float64 {
	days := float64(max(1, l.Days))
	return clamp(l.Total*(1-day/days), 0, max(0, l.Total))
}

// Start returns the day-0 endpoint as (day, remaining).
func (l IdealLine) Start() (float64, float64) { return 0, l.Total }

// End returns the final endpoint as (day, remaining).
func (l IdealLine) End() (float64, float64) { return float64(max(1, l.Days)), 0 }

// WholeDays counts calendar days from start to end. Each time contributes
// its civil date in its own location, so DST shifts and time-of-day do not
// change the count. The result is negative when end precedes start.
func WholeDays(start, end time.Time) int {
	return int(civilDate(end).Sub(civilDate(start)).Hours() / 24)
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
