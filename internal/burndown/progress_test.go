package burndown

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_HalfDone(t *testing.T) {
	s := Summarize(ParseSeries([]string{"20", "30", "x", ""}), 100)
	assert.Equal(t, 50.0, s.Completed)
	assert.Equal(t, 0.5, s.Progress)
	assert.Equal(t, 50.0, s.Remaining)
}

func TestSummarize_ZeroTotal(t *testing.T) {
	s := Summarize(ParseSeries([]string{"5"}), 0)
	assert.Equal(t, 5.0, s.Completed)
	assert.Equal(t, 0.0, s.Progress)
	assert.Equal(t, 0.0, s.Remaining)
	assert.False(t, math.IsNaN(s.Progress))
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(ParseSeries(nil), 40)
	assert.Equal(t, 0.0, s.Completed)
	assert.Equal(t, 0.0, s.Progress)
	assert.Equal(t, 40.0, s.Remaining)
}

func TestSummarize_OverCompletionCaps(t *testing.T) {
	s := Summarize(ParseSeries([]string{"80", "70"}), 100)
	assert.Equal(t, 150.0, s.Completed)
	assert.Equal(t, 1.0, s.Progress)
	assert.Equal(t, 0.0, s.Remaining)
}

func TestSummarize_Bounds(t *testing.T) {
	cases := [][]string{
		{"-10"},
		{"10", "-30"},
		{"1000"},
		{"0.1", "0.2", "0.3"},
	}
	for _, entries := range cases {
		s := Summarize(ParseSeries(entries), 25)
		assert.GreaterOrEqual(t, s.Progress, 0.0, "%q", entries)
		assert.LessOrEqual(t, s.Progress, 1.0, "%q", entries)
		assert.GreaterOrEqual(t, s.Remaining, 0.0, "%q", entries)
		assert.LessOrEqual(t, s.Remaining, 25.0, "%q", entries)
	}
}
