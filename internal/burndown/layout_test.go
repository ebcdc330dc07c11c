package burndown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout_Mapping(t *testing.T) {
	l := NewLayout(300, 200, 10, 100)

	assert.Equal(t, 0.0, l.X(0))
	assert.Equal(t, 150.0, l.X(5))
	assert.Equal(t, 300.0, l.X(10))

	assert.Equal(t, 200.0, l.Y(0))
	assert.Equal(t, 0.0, l.Y(100))
	assert.Equal(t, 100.0, l.Y(50))
}

func TestLayout_ZeroDaysUsesOne(t *testing.T) {
	l := NewLayout(80, 20, 0, 10)
	assert.Equal(t, 80.0, l.X(1))
}

func TestLayout_ZeroTotalIsFlat(t *testing.T) {
	l := NewLayout(80, 20, 5, 0)
	assert.Equal(t, 20.0, l.Y(0))
	assert.Equal(t, 20.0, l.Y(5))
}

func TestPlot_IdealAlwaysCornerToCorner(t *testing.T) {
	for _, total := range []float64{0, 1, 250} {
		c := Plot(NewLayout(120, 40, 9, total), nil, nil)
		assert.Equal(t, Point{0, 0}, c.Ideal.From)
		assert.Equal(t, Point{120, 40}, c.Ideal.To)
	}
}

func TestPlot_ZeroTotalDegeneratesToBottomEdge(t *testing.T) {
	actual := RemainingSeries(ParseSeries([]string{"5"}), 0)
	plan := RemainingSeries(ParseSeries([]string{"3", "4"}), 0)
	c := Plot(NewLayout(100, 50, 4, 0), actual, plan)

	require.Len(t, c.Actual, 1)
	require.Len(t, c.Plan, 2)
	for _, p := range append(c.Actual, c.Plan...) {
		assert.Equal(t, 50.0, p.Y)
	}
	assert.True(t, c.ShowActual)
	assert.False(t, c.ShowPlan)
}

func TestPlot_Guards(t *testing.T) {
	l := NewLayout(100, 100, 4, 100)

	c := Plot(l, nil, nil)
	assert.False(t, c.ShowActual)
	assert.False(t, c.ShowPlan)

	c = Plot(l, []float64{90, 70}, []float64{75, 50})
	assert.True(t, c.ShowActual)
	assert.True(t, c.ShowPlan)
	assert.Equal(t, []Point{{0, 10}, {25, 30}}, c.Actual)
	assert.Equal(t, []Point{{0, 25}, {25, 50}}, c.Plan)

	// plan fully burned on the first period sums to zero remaining
	c = Plot(l, []float64{0}, []float64{0, 0})
	assert.True(t, c.ShowActual)
	assert.False(t, c.ShowPlan)
	assert.Len(t, c.Plan, 2)
}
