package burndown

// Point is a position on the drawing surface. The origin is the top-left
// corner; Y grows downward.
type Point struct {
	X, Y float64
}

// Segment is a straight line between two surface points.
type Segment struct {
	From, To Point
}

// Layout maps (period index, remaining work) onto a Width x Height surface.
type Layout struct {
	Width  float64
	Height float64
	Days   int
	Total  float64
}

// NewLayout returns the mapping for a surface of the given size.
func NewLayout(width, height float64, days int, total float64) Layout {
	return Layout{Width: width, Height: height, Days: days, Total: total}
}

// X is the horizontal position of series index i.
func (l Layout) X(i int) float64 {
	return l.Width * float64(i) / float64(max(1, l.Days))
}

// Y is the vertical position of a remaining-work value. Zero maps to the
// bottom edge and Total to the top. With no total every value sits on the
// bottom edge.
func (l Layout) Y(v float64) float64 {
	if l.Total <= 0 {
		return l.Height
	}
	return l.Height - l.Height*v/l.Total
}

// Points maps a remaining-work series onto the surface.
func (l Layout) Points(series []float64) []Point {
	pts := make([]Point, len(series))
	for i, v := range series {
		pts[i] = Point{X: l.X(i), Y: l.Y(v)}
	}
	return pts
}

// Chart is everything a renderer needs to draw a burndown.
//
// ShowActual and ShowPlan are drawing preconditions: Actual and Plan are
// always mapped, a renderer only skips the path when the flag is false.
type Chart struct {
	Layout Layout
	Ideal  Segment
	Actual []Point
	Plan   []Point

	ShowActual bool
	ShowPlan   bool
}

// Plot lays out the ideal line and both remaining-work series.
func Plot(l Layout, actual, plan []float64) Chart {
	c := Chart{
		Layout: l,
		Ideal: Segment{
			From: Point{X: 0, Y: 0},
			To:   Point{X: l.Width, Y: l.Height},
		},
		Actual: l.Points(actual),
		Plan:   l.Points(plan),
	}

	c.ShowActual = len(actual) > 0 && actual[len(actual)-1] >= 0

	var planSum float64
	for _, v := range plan {
		planSum += v
	}
	c.ShowPlan = planSum > 0

	return c
}
