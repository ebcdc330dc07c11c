// Package burndown computes remaining-work series, ideal trajectories and
// chart geometry for a task-count burndown.
package burndown

import (
	"iter"
	"math"
	"strconv"
	"strings"
)

// ParseSeries yields the numeric value of every entry that parses as a
// decimal number, in input order. Entries that do not parse (including
// blank ones) and non-finite values are skipped, so the output carries no
// index alignment with the input. The sequence can be ranged over any
// number of times.
func ParseSeries(entries []string) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, e := range entries {
			v, ok := parseEntry(e)
			if !ok {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Parsed collects ParseSeries into a slice.
func Parsed(entries []string) []float64 {
	out := make([]float64, 0, len(entries))
	for v := range ParseSeries(entries) {
		out = append(out, v)
	}
	return out
}

func parseEntry(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
