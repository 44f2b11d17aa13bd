package export

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/thermdecay/internal/cooling"
)

var ErrUnsupportedFormat = errors.New("export: unsupported chart format")

var (
	accent  = color.RGBA{R: 0xbb, G: 0x86, B: 0xfc, A: 0xff}
	ambient = color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}
)

const (
	chartWidth  = 8 * vg.Inch
	chartHeight = 5 * vg.Inch
)

// Chart builds the plot for a curve: the temperature line and a dashed line
// at ambient temperature.
func Chart(c *cooling.Curve) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Newton's Law of Cooling"
	p.X.Label.Text = "Time (t)"
	p.Y.Label.Text = "Temperature (T)"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(c.Samples))
	for i, s := range c.Samples {
		pts[i].X = s.Time
		pts[i].Y = s.Temp
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.Color = accent
	line.Width = vg.Points(2.5)

	env := c.Params.Ambient
	floor := plotter.NewFunction(func(float64) float64 { return env })
	floor.Color = ambient
	floor.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}

	p.Add(line, floor)
	p.Y.Min = math.Min(p.Y.Min, env)
	p.Y.Max = math.Max(p.Y.Max, env)
	p.Legend.Add(cooling.Formula(c.Params), line)
	p.Legend.Add("ambient", floor)
	p.Legend.Top = true
	return p, nil
}

// SaveChart renders c to path. The format follows the extension: .png,
// .svg or .pdf.
func SaveChart(path string, c *cooling.Curve) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png", ".svg", ".pdf":
	default:
		return fail(path, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext))
	}

	p, err := Chart(c)
	if err != nil {
		return fail(path, err)
	}
	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return fail(path, err)
	}
	return nil
}
