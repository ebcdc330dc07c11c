package burndown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemainingSeries_SkipsBadEntryWithoutSlot(t *testing.T) {
	got := RemainingSeries(ParseSeries([]string{"10", "bad", "20"}), 100)
	assert.Equal(t, []float64{90, 70}, got)
}

func TestRemainingSeries_FloorsAtZero(t *testing.T) {
	got := RemainingSeries(ParseSeries([]string{"60", "60", "5"}), 100)
	assert.Equal(t, []float64{40, 0, 0}, got)
}

func TestRemainingSeries_Empty(t *testing.T) {
	assert.Empty(t, RemainingSeries(ParseSeries([]string{"", "x"}), 10))
}

func TestRemainingSeries_NonIncreasing(t *testing.T) {
	inputs := [][]string{
		{"1", "2", "3", "4"},
		{"0", "0", "5"},
		{"12.5", "", "7.5", "100"},
	}
	for _, in := range inputs {
		got := RemainingSeries(ParseSeries(in), 30)
		for i := 1; i < len(got); i++ {
			assert.LessOrEqualf(t, got[i], got[i-1], "series %v not monotonic at %d", got, i)
		}
	}
}
