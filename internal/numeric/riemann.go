package numeric

import "github.com/san-kum/integralab/internal/expr"

// DefaultPartitions is used whenever a caller passes n <= 0.
const DefaultPartitions = 100

// Approximation is the outcome of one quadrature pass.
type Approximation struct {
	Rule       string  `json:"rule"`
	Value      float64 `json:"value"`
	Partitions int     `json:"partitions"`
	Skipped    int     `json:"skipped"`
}

// Midpoint approximates the integral of f from a to b with n midpoint
// rectangles.
func Midpoint(f expr.Func, a, b float64, n int) float64 {
	return NewMidpoint().Integrate(f, a, b, n).Value
}

// MidpointRule is the midpoint Riemann sum.
type MidpointRule struct{}

func NewMidpoint() *MidpointRule {
	return &MidpointRule{}
}

func (m *MidpointRule) Name() string { return "midpoint" }

func (m *MidpointRule) Integrate(f expr.Func, a, b float64, n int) Approximation {
	return oriented(m.Name(), a, b, n, func(lo, hi float64, n int) (float64, int) {
		return rectangles(f, lo, hi, n, 0.5)
	})
}

// LeftRule samples each partition at its left edge.
type LeftRule struct{}

func NewLeft() *LeftRule {
	return &LeftRule{}
}

func (l *LeftRule) Name() string { return "left" }

func (l *LeftRule) Integrate(f expr.Func, a, b float64, n int) Approximation {
	return oriented(l.Name(), a, b, n, func(lo, hi float64, n int) (float64, int) {
		return rectangles(f, lo, hi, n, 0)
	})
}

// RightRule samples each partition at its right edge.
type RightRule struct{}

func NewRight() *RightRule {
	return &RightRule{}
}

func (r *RightRule) Name() string { return "right" }

func (r *RightRule) Integrate(f expr.Func, a, b float64, n int) Approximation {
	return oriented(r.Name(), a, b, n, func(lo, hi float64, n int) (float64, int) {
		return rectangles(f, lo, hi, n, 1)
	})
}

// oriented runs pass over [min(a,b), max(a,b)] and negates the value for
// reversed limits.
func oriented(name string, a, b float64, n int, pass func(lo, hi float64, n int) (float64, int)) Approximation {
	if n <= 0 {
		n = DefaultPartitions
	}
	out := Approximation{Rule: name, Partitions: n}
	if a == b {
		return out
	}
	lo, hi, sign := a, b, 1.0
	if b < a {
		lo, hi, sign = b, a, -1.0
	}
	v, skipped := pass(lo, hi, n)
	out.Value = sign * v
	out.Skipped = skipped
	return out
}

// rectangles sums f at lo + (i+offset)*dx times dx. Failed evaluations
// contribute zero.
func rectangles(f expr.Func, lo, hi float64, n int, offset float64) (float64, int) {
	dx := (hi - lo) / float64(n)
	sum := 0.0
	skipped := 0
	for i := 0; i < n; i++ {
		x := lo + (float64(i)+offset)*dx
		y, err := f.Eval(x)
		if err != nil || !isFinite(y) {
			skipped++
			continue
		}
		sum += y * dx
	}
	return sum, skipped
}
