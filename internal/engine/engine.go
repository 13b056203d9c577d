package engine

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/san-kum/integralab/internal/animate"
	"github.com/san-kum/integralab/internal/config"
	"github.com/san-kum/integralab/internal/expr"
	"github.com/san-kum/integralab/internal/numeric"
	"github.com/san-kum/integralab/internal/symbolic"
	"github.com/san-kum/integralab/internal/viz"
)

type Option func(*Engine)

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

func WithConfig(cfg *config.Config) Option {
	return func(e *Engine) {
		if cfg != nil {
			e.cfg = cfg
		}
	}
}

type Engine struct {
	cfg *config.Config
	log *zap.Logger
}

func New(opts ...Option) *Engine {
	e := &Engine{
		cfg: config.DefaultConfig(),
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Config() *config.Config { return e.cfg }

// Plot is sampled curve data together with the viewport that frames it.
type Plot struct {
	Expr     string              `json:"expr"`
	Samples  []numeric.Sample    `json:"samples"`
	Viewport viz.Viewport        `json:"viewport"`
	Stats    numeric.SampleStats `json:"stats"`
}

func (e *Engine) Integrate(text string) (symbolic.Result, error) {
	res, err := symbolic.IntegrateText(text)
	if err != nil {
		e.log.Debug("integrate failed", zap.String("input", text), zap.Error(err))
		return res, err
	}
	e.log.Debug("integrate",
		zap.String("integrand", res.Integrand),
		zap.Bool("matched", res.Matched),
		zap.String("rule", res.Rule),
	)
	return res, nil
}

func (e *Engine) parse(text string) (*expr.Expr, error) {
	f, err := expr.Parse(expr.Normalize(text).Text)
	if err != nil {
		e.log.Debug("parse failed", zap.String("input", text), zap.Error(err))
		return nil, err
	}
	return f, nil
}

// SamplePlot samples text over [xMin, xMax]. sampleCount <= 0 uses the
// configured default.
func (e *Engine) SamplePlot(text string, xMin, xMax float64, sampleCount int) (*Plot, error) {
	f, err := e.parse(text)
	if err != nil {
		return nil, err
	}
	if sampleCount <= 0 {
		sampleCount = e.cfg.Plot.Samples
	}
	samples, err := numeric.SampleFunc(f, xMin, xMax, sampleCount)
	if err != nil {
		return nil, err
	}
	vp, err := viz.DetectViewport(samples, xMin, xMax)
	if err != nil {
		return nil, err
	}
	st := numeric.Stats(samples)
	if st.Absent > 0 {
		e.log.Debug("absent samples", zap.String("expr", f.String()), zap.Int("absent", st.Absent))
	}
	return &Plot{Expr: f.String(), Samples: samples, Viewport: vp, Stats: st}, nil
}

// ApproximateDefiniteIntegral is the midpoint Riemann sum of text from lower
// to upper. partitions <= 0 uses the configured default.
func (e *Engine) ApproximateDefiniteIntegral(text string, lower, upper float64, partitions int) (float64, error) {
	approx, err := e.Approximate(text, lower, upper, partitions, "midpoint")
	if err != nil {
		return 0, err
	}
	return approx.Value, nil
}

// Approximate integrates with a named rule. An empty rule uses the
// configured one.
func (e *Engine) Approximate(text string, lower, upper float64, partitions int, rule string) (numeric.Approximation, error) {
	f, err := e.parse(text)
	if err != nil {
		return numeric.Approximation{}, err
	}
	return e.approximate(f, lower, upper, partitions, rule)
}

func (e *Engine) approximate(f *expr.Expr, lower, upper float64, partitions int, rule string) (numeric.Approximation, error) {
	if rule == "" {
		rule = e.cfg.Integral.Rule
	}
	r, err := numeric.NewRule(rule)
	if err != nil {
		return numeric.Approximation{}, err
	}
	if !finite(lower) || !finite(upper) {
		return numeric.Approximation{}, fmt.Errorf("%w: [%g, %g]", numeric.ErrInvalidRange, lower, upper)
	}
	if partitions <= 0 {
		partitions = e.cfg.Integral.Partitions
	}

	approx := r.Integrate(f, lower, upper, partitions)
	if approx.Skipped > 0 {
		e.log.Debug("skipped undefined points",
			zap.String("expr", f.String()),
			zap.String("rule", approx.Rule),
			zap.Int("skipped", approx.Skipped),
		)
	}
	return approx, nil
}

func (e *Engine) NewAnimationSession(text string, a, b, step float64, opts ...animate.Option) (*animate.Session, error) {
	f, err := e.parse(text)
	if err != nil {
		return nil, err
	}
	s, err := animate.New(f, a, b, step, opts...)
	if err != nil {
		return nil, err
	}
	e.log.Info("animation session created",
		zap.String("session", s.ID()),
		zap.String("expr", f.String()),
		zap.Float64("a", a),
		zap.Float64("b", b),
		zap.Float64("step", step),
	)
	return s, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
