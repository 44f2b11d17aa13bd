package viz

import (
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/thermdecay/internal/cooling"
)

// PlotOptions control the terminal chart.
type PlotOptions struct {
	Width  int
	Height int
	Color  bool
}

// Plot draws the temperature curve with a flat series at ambient
// temperature, followed by a time axis line.
func Plot(c *cooling.Curve, o PlotOptions) string {
	temps := c.Temps()
	ambient := make([]float64, len(temps))
	for i := range ambient {
		ambient[i] = c.Params.Ambient
	}

	series := [][]float64{temps, ambient}
	opts := []asciigraph.Option{
		asciigraph.Height(o.Height),
		asciigraph.Width(o.Width),
		asciigraph.Precision(1),
	}
	plain := asciigraph.PlotMany(series, opts...)
	offset := axisOffset(plain)
	footer := timeAxis(offset, o.Width, c.Params.TMax) + "\n" +
		strings.Repeat(" ", offset) + cooling.Formula(c.Params)
	if !o.Color {
		return plain + "\n" + footer
	}

	opts = append(opts, asciigraph.SeriesColors(asciigraph.Violet, asciigraph.Gray))
	return asciigraph.PlotMany(series, opts...) + "\n" + footer
}

// axisOffset is the column just right of the y axis in an uncolored graph.
func axisOffset(graph string) int {
	for _, line := range strings.Split(graph, "\n") {
		for j, r := range []rune(line) {
			if r == '┤' || r == '┼' {
				return j + 1
			}
		}
	}
	return 0
}

// timeAxis labels both ends of the x axis, which asciigraph does not draw.
func timeAxis(offset, width int, tmax float64) string {
	left := "t=0"
	right := "t=" + cooling.FormatNumber(tmax)
	gap := width - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	return strings.Repeat(" ", offset) + left + strings.Repeat(" ", gap) + right
}

// PlotSamples draws bare samples, such as a re-read export, where the
// parameters that produced them are unknown.
func PlotSamples(samples []cooling.Sample, o PlotOptions) string {
	if len(samples) == 0 {
		return ""
	}
	temps := make([]float64, len(samples))
	for i, s := range samples {
		temps[i] = s.Temp
	}

	opts := []asciigraph.Option{
		asciigraph.Height(o.Height),
		asciigraph.Width(o.Width),
		asciigraph.Precision(1),
	}
	plain := asciigraph.Plot(temps, opts...)
	axis := timeAxis(axisOffset(plain), o.Width, samples[len(samples)-1].Time)
	if !o.Color {
		return plain + "\n" + axis
	}
	opts = append(opts, asciigraph.SeriesColors(asciigraph.Violet))
	return asciigraph.Plot(temps, opts...) + "\n" + axis
}
