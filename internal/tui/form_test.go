package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/burndown/internal/model"
)

func TestProjectValuesRoundTrip(t *testing.T) {
	p := model.NewProject(day0)
	p.SetName("Docs")
	p.SetTotalTask(1250)
	p.SetDates(day0, day0.AddDate(0, 0, 5))
	p.AddPeriod()
	p.AddPeriod()
	require.NoError(t, p.SetActual(0, "100"))
	require.NoError(t, p.SetPlan(1, "abc"))

	v := valuesOf(p)
	assert.Equal(t, "Docs", v.name)
	assert.Equal(t, "1,250", v.total)
	assert.Equal(t, "2026-01-01", v.start)
	assert.Equal(t, "2026-01-06", v.end)
	assert.Equal(t, []string{"100", ""}, v.actuals)
	assert.Equal(t, []string{"", "abc"}, v.plans)

	require.NoError(t, v.apply(p, false))
	assert.Equal(t, 1250.0, p.TotalTask())
	assert.Equal(t, []string{"", "abc"}, p.Plans())
	assert.Equal(t, 5, p.Ideal().Days)
}

func TestProjectValuesApplyNew(t *testing.T) {
	p := model.NewProject(day0)
	v := valuesOf(p)
	v.name = "  Sprint 4  "
	v.total = "30"
	v.periods = "2"

	var changes []model.Change
	p.Subscribe(func(c model.Change) { changes = append(changes, c) })

	require.NoError(t, v.apply(p, true))
	assert.Equal(t, "Sprint 4", p.Name())
	assert.Equal(t, 2, p.Periods())
	assert.Equal(t, []string{"", ""}, p.Actuals())
	assert.Contains(t, changes, model.ChangePeriods)
}

func TestProjectValuesApplyErrors(t *testing.T) {
	tests := []struct {
		name string
		edit func(v *projectValues)
		want string
	}{
		{"negative total", func(v *projectValues) { v.total = "-3" }, "negative"},
		{"bad total", func(v *projectValues) { v.total = "ten" }, "total tasks"},
		{"bad start", func(v *projectValues) { v.start = "01/02/2026" }, "start date"},
		{"bad end", func(v *projectValues) { v.end = "tomorrow" }, "end date"},
		{"bad periods", func(v *projectValues) { v.periods = "-1" }, "periods"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := model.NewProject(day0)
			v := valuesOf(p)
			tt.edit(v)
			err := v.apply(p, true)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidators(t *testing.T) {
	assert.NoError(t, validateTotal(""))
	assert.NoError(t, validateTotal("1,000.5"))
	assert.Error(t, validateTotal("x"))

	assert.NoError(t, validateDate("2026-02-28"))
	assert.Error(t, validateDate("2026-02-30"))

	assert.NoError(t, validatePeriods("12"))
	assert.Error(t, validatePeriods("1000"))
}

func TestFormsBuild(t *testing.T) {
	p := model.NewProject(day0)
	p.AddPeriod()

	assert.NotNil(t, newProjectForm(valuesOf(p), false))
	assert.NotNil(t, newProjectForm(valuesOf(model.NewProject(day0)), true))

	confirmed := false
	assert.NotNil(t, newDeleteForm("", &confirmed))
}
