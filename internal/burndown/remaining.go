package burndown

import "iter"

// RemainingSeries turns per-period increments into "work left after period i"
// values: element i is max(0, total - sum(values[0..i])). Only values the
// sequence yields take a slot, so the result is as long as the parsed input.
func RemainingSeries(values iter.Seq[float64], total float64) []float64 {
	var (
		out []float64
		sum float64
	)
	for v := range values {
		sum += v
		out = append(out, max(0, total-sum))
	}
	return out
}
