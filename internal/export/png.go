package export

import (
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/integralab/internal/numeric"
	"github.com/san-kum/integralab/internal/viz"
)

// Figure is a plot described in domain coordinates, for backends that do
// their own layout.
type Figure struct {
	Title    string
	Viewport viz.Viewport
	Curve    []numeric.Sample
	Region   *Region
}

// Region is a shaded area between the curve and y = 0. Samples cover
// [min(Lower, Upper), max(Lower, Upper)].
type Region struct {
	Lower, Upper float64
	Samples      []numeric.Sample
	Label        string
}

// Plot builds a gonum plot of the figure.
func (f *Figure) Plot() (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = f.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.X.Min, p.X.Max = f.Viewport.XMin, f.Viewport.XMax
	p.Y.Min, p.Y.Max = f.Viewport.YMin, f.Viewport.YMax
	p.Add(plotter.NewGrid())

	if f.Region != nil {
		if ring := regionRing(f.Region.Samples); len(ring) >= 3 {
			poly, err := plotter.NewPolygon(ring)
			if err != nil {
				return nil, fmt.Errorf("failed to build region: %w", err)
			}
			area := viz.StyleFor(viz.RoleArea)
			poly.Color = hexColor(area.Fill, area.Opacity)
			poly.LineStyle.Width = 0
			p.Add(poly)
			if f.Region.Label != "" {
				p.Legend.Add(f.Region.Label, poly)
			}
		}
		if err := addBounds(p, f.Region); err != nil {
			return nil, err
		}
	}

	curve := viz.StyleFor(viz.RoleCurve)
	for _, seg := range segments(f.Curve) {
		l, err := plotter.NewLine(seg)
		if err != nil {
			return nil, fmt.Errorf("failed to build curve: %w", err)
		}
		l.LineStyle.Color = hexColor(curve.Stroke, 1)
		l.LineStyle.Width = vg.Points(curve.Width)
		p.Add(l)
	}
	return p, nil
}

func addBounds(p *plot.Plot, r *Region) error {
	bound := viz.StyleFor(viz.RoleBound)
	for _, x := range []float64{r.Lower, r.Upper} {
		y, ok := valueAt(r.Samples, x)
		if !ok {
			continue
		}
		l, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: y}})
		if err != nil {
			return fmt.Errorf("failed to build bound: %w", err)
		}
		l.LineStyle.Color = hexColor(bound.Stroke, 1)
		l.LineStyle.Width = vg.Points(bound.Width)
		p.Add(l)
	}
	return nil
}

// WritePNG renders the figure as a PNG of the given size in points.
func WritePNG(w io.Writer, f *Figure, width, height float64) error {
	p, err := f.Plot()
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(vg.Length(width), vg.Length(height), "png")
	if err != nil {
		return fmt.Errorf("failed to render png: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// SavePNG writes the figure to path; the format follows the extension.
func SavePNG(path string, f *Figure, width, height float64) error {
	p, err := f.Plot()
	if err != nil {
		return err
	}
	return p.Save(vg.Length(width), vg.Length(height), path)
}

// segments splits samples into runs of present points.
func segments(samples []numeric.Sample) []plotter.XYs {
	var out []plotter.XYs
	var cur plotter.XYs
	for _, s := range samples {
		if !s.OK {
			if len(cur) >= 2 {
				out = append(out, cur)
			}
			cur = nil
			continue
		}
		cur = append(cur, plotter.XY{X: s.X, Y: s.Y})
	}
	if len(cur) >= 2 {
		out = append(out, cur)
	}
	return out
}

// regionRing closes the curve onto y = 0. Absent samples sit on the axis.
func regionRing(samples []numeric.Sample) plotter.XYs {
	if len(samples) < 2 {
		return nil
	}
	ring := make(plotter.XYs, 0, len(samples)+2)
	for _, s := range samples {
		ring = append(ring, plotter.XY{X: s.X, Y: s.Y})
	}
	ring = append(ring,
		plotter.XY{X: samples[len(samples)-1].X, Y: 0},
		plotter.XY{X: samples[0].X, Y: 0},
	)
	return ring
}

func valueAt(samples []numeric.Sample, x float64) (float64, bool) {
	for _, s := range samples {
		if s.X == x {
			return s.Y, s.OK
		}
	}
	return 0, false
}

// hexColor parses #rrggbb.
func hexColor(hex string, opacity float64) color.Color {
	hex = strings.TrimPrefix(hex, "#")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || len(hex) != 6 {
		return color.Black
	}
	a := uint8(opacity * 255)
	// premultiplied
	scale := func(c uint64) uint8 { return uint8(float64(c) * opacity) }
	return color.RGBA{R: scale(v>>16&0xff), G: scale(v>>8&0xff), B: scale(v&0xff), A: a}
}
