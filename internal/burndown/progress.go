package burndown

import "iter"

// Summary is the reduction of a project's actual entries against its total.
type Summary struct {
	Completed float64 // sum of parsed actual entries
	Progress  float64 // completed / total, in [0, 1]
	Remaining float64 // total - completed, in [0, total]
}

// Summarize reduces parsed per-period values against total.
//
// A total of zero (or less) means there is nothing to track: Progress and
// Remaining are both 0 instead of the NaN a plain division would produce.
func Summarize(values iter.Seq[float64], total float64) Summary {
	var s Summary
	for v := range values {
		s.Completed += v
	}
	if total <= 0 {
		return s
	}

	s.Progress = clamp(s.Completed/total, 0, 1)
	s.Remaining = clamp(total-s.Completed, 0, total)
	return s
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
