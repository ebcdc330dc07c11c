package cli

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/theirongolddev/burndown/internal/burndown"
)

// SVGStyle holds the colors used by RenderSVG.
type SVGStyle struct {
	Background string
	Axis       string
	Ideal      string
	Actual     string
	Plan       string
	Text       string
}

// DefaultSVGStyle matches the Flexoki Dark terminal palette.
var DefaultSVGStyle = SVGStyle{
	Background: "#100F0F",
	Axis:       "#575653",
	Ideal:      "#878580",
	Actual:     "#3AA99F",
	Plan:       "#DA702C",
	Text:       "#FFFCF0",
}

// svgMargin is the gap between the image edge and the chart surface.
const svgMargin = 40

// SVGSurface returns the plotting surface inside a width x height image.
func SVGSurface(width, height int) (w, h float64) {
	return float64(max(width-2*svgMargin, 10)), float64(max(height-2*svgMargin, 10))
}

// RenderSVG writes the chart as a standalone SVG document. The chart's
// layout is the inner plotting surface; the image adds a margin for the
// axes and legend.
func RenderSVG(w io.Writer, title string, c burndown.Chart, style SVGStyle) error {
	l := c.Layout
	width := l.Width + 2*svgMargin
	height := l.Height + 2*svgMargin

	var svg strings.Builder
	fmt.Fprintf(&svg, `<?xml version="1.0" encoding="UTF-8"?>
<svg width="%s" height="%s" viewBox="0 0 %s %s" xmlns="http://www.w3.org/2000/svg">
`, num(width), num(height), num(width), num(height))
	fmt.Fprintf(&svg, `<rect width="100%%" height="100%%" fill="%s"/>
`, style.Background)

	if title != "" {
		fmt.Fprintf(&svg, `<text x="%d" y="%d" fill="%s" font-family="sans-serif" font-size="14">%s</text>
`, svgMargin, svgMargin/2+5, style.Text, html.EscapeString(title))
	}

	fmt.Fprintf(&svg, `<g transform="translate(%d,%d)">
`, svgMargin, svgMargin)

	// axes
	fmt.Fprintf(&svg, `<line x1="0" y1="0" x2="0" y2="%s" stroke="%s" stroke-width="1"/>
`, num(l.Height), style.Axis)
	fmt.Fprintf(&svg, `<line x1="0" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="1"/>
`, num(l.Height), num(l.Width), num(l.Height), style.Axis)

	fmt.Fprintf(&svg, `<line class="ideal" x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="2" stroke-dasharray="6 4"/>
`, num(c.Ideal.From.X), num(c.Ideal.From.Y), num(c.Ideal.To.X), num(c.Ideal.To.Y), style.Ideal)

	if c.ShowPlan {
		writePolyline(&svg, "plan", c.Plan, style.Plan)
	}
	if c.ShowActual {
		writePolyline(&svg, "actual", c.Actual, style.Actual)
	}

	svg.WriteString("</g>\n")

	// legend
	legend := []struct{ label, color string }{
		{"Ideal", style.Ideal},
		{"Plan", style.Plan},
		{"Actual", style.Actual},
	}
	x := svgMargin
	y := int(height) - svgMargin/2 + 5
	for _, item := range legend {
		fmt.Fprintf(&svg, `<rect x="%d" y="%d" width="10" height="10" fill="%s"/>
`, x, y-9, item.color)
		fmt.Fprintf(&svg, `<text x="%d" y="%d" fill="%s" font-family="sans-serif" font-size="12">%s</text>
`, x+14, y, style.Text, item.label)
		x += 80
	}

	svg.WriteString("</svg>\n")

	_, err := io.WriteString(w, svg.String())
	return err
}

func writePolyline(svg *strings.Builder, class string, pts []burndown.Point, color string) {
	coords := make([]string, len(pts))
	for i, p := range pts {
		coords[i] = num(p.X) + "," + num(p.Y)
	}
	fmt.Fprintf(svg, `<polyline class="%s" points="%s" fill="none" stroke="%s" stroke-width="2"/>
`, class, strings.Join(coords, " "), color)
	for _, p := range pts {
		fmt.Fprintf(svg, `<circle cx="%s" cy="%s" r="3" fill="%s"/>
`, num(p.X), num(p.Y), color)
	}
}

// num prints a coordinate with at most two decimals and no trailing zeros.
func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
