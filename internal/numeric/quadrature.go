package numeric

import (
	"gonum.org/v1/gonum/integrate"

	"github.com/san-kum/integralab/internal/expr"
)

// TrapezoidRule applies the composite trapezoid rule on an even grid.
type TrapezoidRule struct{}

func NewTrapezoid() *TrapezoidRule {
	return &TrapezoidRule{}
}

func (t *TrapezoidRule) Name() string { return "trapezoid" }

func (t *TrapezoidRule) Integrate(f expr.Func, a, b float64, n int) Approximation {
	return oriented(t.Name(), a, b, n, func(lo, hi float64, n int) (float64, int) {
		xs, ys, skipped := grid(f, lo, hi, n)
		return integrate.Trapezoidal(xs, ys), skipped
	})
}

// SimpsonRule applies Simpson's rule. It needs at least two partitions.
type SimpsonRule struct{}

func NewSimpson() *SimpsonRule {
	return &SimpsonRule{}
}

func (s *SimpsonRule) Name() string { return "simpson" }

func (s *SimpsonRule) Integrate(f expr.Func, a, b float64, n int) Approximation {
	if n > 0 && n < 2 {
		n = 2
	}
	return oriented(s.Name(), a, b, n, func(lo, hi float64, n int) (float64, int) {
		xs, ys, skipped := grid(f, lo, hi, n)
		return integrate.Simpsons(xs, ys), skipped
	})
}

// grid evaluates f at n+1 points. Absent values become zero.
func grid(f expr.Func, lo, hi float64, n int) (xs, ys []float64, skipped int) {
	xs = make([]float64, n+1)
	ys = make([]float64, n+1)
	dx := (hi - lo) / float64(n)
	for i := 0; i <= n; i++ {
		x := lo + float64(i)*dx
		if i == n {
			x = hi
		}
		xs[i] = x
		s := evalSample(f, x)
		if !s.OK {
			skipped++
			continue
		}
		ys[i] = s.Y
	}
	return xs, ys, skipped
}
