package burndown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewIdealLine_NineDays(t *testing.T) {
	day0 := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	l := NewIdealLine(day0, day0.AddDate(0, 0, 9), 100)

	assert.Equal(t, 9, l.Days)
	d, v := l.Start()
	assert.Equal(t, 0.0, d)
	assert.Equal(t, 100.0, v)
	d, v = l.End()
	assert.Equal(t, 9.0, d)
	assert.Equal(t, 0.0, v)
}

func TestNewIdealLine_ClampsToOneDay(t *testing.T) {
	day0 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, NewIdealLine(day0, day0, 10).Days)
	assert.Equal(t, 1, NewIdealLine(day0, day0.AddDate(0, 0, -4), 10).Days)
}

func TestWholeDays_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)
	end := time.Date(2026, 3, 2, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, WholeDays(start, end))
	assert.Equal(t, -1, WholeDays(end, start))
}

func TestWholeDays_AcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	start := time.Date(2026, 3, 7, 12, 0, 0, 0, loc)
	end := time.Date(2026, 3, 9, 12, 0, 0, 0, loc)
	assert.Equal(t, 2, WholeDays(start, end))
}

func TestIdealLine_At(t *testing.T) {
	l := IdealLine{Total: 90, Days: 9}
	assert.Equal(t, 90.0, l.At(0))
	assert.InDelta(t, 50.0, l.At(4), 1e-9)
	assert.Equal(t, 0.0, l.At(9))
	assert.Equal(t, 0.0, l.At(20))
	assert.Equal(t, 90.0, l.At(-3))
}
