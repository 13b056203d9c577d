package engine

import (
	"fmt"
	"math"
	"strconv"

	"go.uber.org/zap"

	"github.com/san-kum/integralab/internal/animate"
	"github.com/san-kum/integralab/internal/export"
	"github.com/san-kum/integralab/internal/expr"
	"github.com/san-kum/integralab/internal/numeric"
	"github.com/san-kum/integralab/internal/viz"
)

// definite holds everything the definite-integral picture is drawn from.
type definite struct {
	f            *expr.Expr
	lower, upper float64
	curve        []numeric.Sample
	vp           viz.Viewport
	approx       numeric.Approximation
}

func (e *Engine) definite(text string, lower, upper float64, samples int) (*definite, error) {
	f, err := e.parse(text)
	if err != nil {
		return nil, err
	}
	approx, err := e.approximate(f, lower, upper, e.cfg.Integral.Partitions, e.cfg.Integral.Rule)
	if err != nil {
		return nil, err
	}

	xMin := math.Min(lower, upper) - e.cfg.Plot.Margin
	xMax := math.Max(lower, upper) + e.cfg.Plot.Margin
	if xMin == xMax {
		xMin, xMax = xMin-1, xMax+1
	}
	if samples < 1 {
		samples = e.cfg.Plot.Samples
	}
	curve, err := numeric.SampleFunc(f, xMin, xMax, samples)
	if err != nil {
		return nil, err
	}
	vp, err := viz.DetectViewport(curve, xMin, xMax)
	if err != nil {
		return nil, err
	}
	return &definite{f: f, lower: lower, upper: upper, curve: curve, vp: vp, approx: approx}, nil
}

// DefiniteScene draws f over the limits widened by the configured margin,
// with the region between the limits shaded and the approximation labelled.
// The curve is sampled once per surface unit of width.
func (e *Engine) DefiniteScene(text string, lower, upper float64, frame viz.Frame) (*viz.Scene, numeric.Approximation, error) {
	d, err := e.definite(text, lower, upper, int(frame.Width))
	if err != nil {
		return nil, numeric.Approximation{}, err
	}
	m, err := viz.NewMapper(d.vp, frame)
	if err != nil {
		return nil, numeric.Approximation{}, err
	}

	s := viz.NewScene(m)
	viz.DrawAxes(s, m)
	if lower != upper {
		s.Polygon(viz.AreaPolygon(d.f, lower, upper, m, numeric.DefaultPartitions), viz.StyleFor(viz.RoleArea))
	}
	for _, path := range viz.CurvePaths(d.curve, m) {
		s.Polyline(path, viz.StyleFor(viz.RoleCurve))
	}
	if lower != upper {
		base := baseline(d.vp)
		for _, x := range []float64{lower, upper} {
			y, err := d.f.Eval(x)
			if err != nil {
				continue
			}
			s.Polyline([]viz.Point{m.ToSurface(x, base), m.ToSurface(x, y)}, viz.StyleFor(viz.RoleBound))
		}
		title := viz.StyleFor(viz.RoleTitle)
		s.Text(viz.Point{X: 10, Y: 20}, fmt.Sprintf("∫ %s dx from %s to %s", d.f, num(lower), num(upper)), title)
		s.Text(viz.Point{X: 10, Y: 40}, fmt.Sprintf("≈ %.4f", d.approx.Value), title)
	}

	e.logScene("definite", d.curve, d.approx.Skipped)
	return s, d.approx, nil
}

// DefiniteFigure is the gonum/plot counterpart of DefiniteScene.
func (e *Engine) DefiniteFigure(text string, lower, upper float64) (*export.Figure, numeric.Approximation, error) {
	d, err := e.definite(text, lower, upper, e.cfg.Plot.Samples)
	if err != nil {
		return nil, numeric.Approximation{}, err
	}
	fig := &export.Figure{
		Title:    fmt.Sprintf("∫ %s dx from %s to %s", d.f, num(lower), num(upper)),
		Viewport: d.vp,
		Curve:    d.curve,
	}
	if lower != upper {
		lo, hi := math.Min(lower, upper), math.Max(lower, upper)
		region, err := numeric.SampleFunc(d.f, lo, hi, numeric.DefaultPartitions)
		if err != nil {
			return nil, numeric.Approximation{}, err
		}
		fig.Region = &export.Region{
			Lower:   lower,
			Upper:   upper,
			Samples: region,
			Label:   fmt.Sprintf("≈ %.4f", d.approx.Value),
		}
	}
	e.logScene("figure", d.curve, d.approx.Skipped)
	return fig, d.approx, nil
}

// Report collects the antiderivative, approximation and samples for text.
func (e *Engine) Report(text string, lower, upper float64) (*export.Report, error) {
	d, err := e.definite(text, lower, upper, e.cfg.Plot.Samples)
	if err != nil {
		return nil, err
	}
	r := &export.Report{
		Expression:    d.f.String(),
		Lower:         lower,
		Upper:         upper,
		Approximation: d.approx,
		Viewport:      d.vp,
		Stats:         numeric.Stats(d.curve),
		Samples:       d.curve,
	}
	if res, err := e.Integrate(text); err == nil {
		r.Antiderivative = &res
	}
	return r, nil
}

// AnimationScene draws the accumulation view for the session's current
// state: the curve over [a, b], the swept area up to x and a sweep line with
// A(x), x and f(x) labels. Once finished it adds the final area and the
// fundamental theorem.
func (e *Engine) AnimationScene(sess *animate.Session, frame viz.Frame) (*viz.Scene, error) {
	a, b := sess.Bounds()
	f := sess.Func()
	n := int(frame.Width - 2*frame.Padding)
	if n < 1 {
		return nil, fmt.Errorf("%w: %gx%g padding %g", viz.ErrInvalidFrame, frame.Width, frame.Height, frame.Padding)
	}
	curve, err := numeric.SampleFunc(f, a, b, n)
	if err != nil {
		return nil, err
	}
	vp, err := viz.DetectViewport(curve, a, b)
	if err != nil {
		return nil, err
	}
	vp.YMin = math.Min(vp.YMin, 0)
	vp.YMax = math.Max(vp.YMax, 0)
	m, err := viz.NewMapper(vp, frame)
	if err != nil {
		return nil, err
	}

	st := sess.State()
	s := viz.NewScene(m)
	viz.DrawAxes(s, m)
	viz.DrawTicks(s, m, 10, 5)
	if st.CurrentX > a {
		steps := int(math.Ceil((st.CurrentX - a) / (b - a) * float64(n)))
		s.Polygon(viz.AreaPolygon(f, a, st.CurrentX, m, steps), viz.StyleFor(viz.RoleArea))
	}
	for _, path := range viz.CurvePaths(curve, m) {
		s.Polyline(path, viz.StyleFor(viz.RoleCurve))
	}

	base := baseline(vp)
	sx := m.ToSurfaceX(st.CurrentX)
	bottom := m.ToSurfaceY(vp.YMin)
	sy := m.ToSurfaceY(base)
	if st.YOK {
		sy = m.ToSurfaceY(st.Y)
		s.Polyline([]viz.Point{m.ToSurface(st.CurrentX, base), {X: sx, Y: sy}}, viz.StyleFor(viz.RoleSweep))
	}

	label := viz.StyleFor(viz.RoleLabel)
	s.Text(viz.Point{X: sx + 10, Y: sy - 10}, fmt.Sprintf("A(x) = %.3f", st.AccumulatedArea), label)
	s.Text(viz.Point{X: sx - 20, Y: bottom + 35}, fmt.Sprintf("x = %.2f", st.CurrentX), label)
	if st.YOK {
		s.Text(viz.Point{X: sx + 10, Y: sy + 20}, fmt.Sprintf("f(x) = %.3f", st.Y), label)
	}

	if sess.Status() == animate.Finished {
		title := viz.StyleFor(viz.RoleTitle)
		title.FontSize = 16
		s.Text(viz.Point{X: frame.Width/2 - 100, Y: frame.Padding + 30},
			fmt.Sprintf("A(%.1f) = %.3f", b, st.AccumulatedArea), title)
		s.Text(viz.Point{X: frame.Width/2 - 100, Y: frame.Padding + 60}, "A'(x) = f(x)", title)
	}
	return s, nil
}

func (e *Engine) logScene(kind string, curve []numeric.Sample, skipped int) {
	st := numeric.Stats(curve)
	if st.Absent == 0 && skipped == 0 {
		return
	}
	e.log.Debug("undefined points absorbed",
		zap.String("scene", kind),
		zap.Int("absent", st.Absent),
		zap.Int("skipped", skipped),
	)
}

// baseline is y = 0 clamped into the viewport.
func baseline(vp viz.Viewport) float64 {
	return math.Min(math.Max(0, vp.YMin), vp.YMax)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
