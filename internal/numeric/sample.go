package numeric

import (
	"fmt"
	"math"

	"github.com/san-kum/integralab/internal/expr"
)

// Fallback y-range used when no usable samples exist.
const (
	DefaultYMin = -2.0
	DefaultYMax = 2.0
)

// Sample is one grid point. When OK is false the point is absent and Y is 0.
type Sample struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	OK bool    `json:"ok"`
}

// Absent reports whether evaluation failed at this point.
func (s Sample) Absent() bool { return !s.OK }

type SampleStats struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
}

// SampleFunc evaluates f at n+1 evenly spaced points from xMin to xMax.
func SampleFunc(f expr.Func, xMin, xMax float64, n int) ([]Sample, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, n)
	}
	if !isFinite(xMin) || !isFinite(xMax) || xMin >= xMax {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, xMin, xMax)
	}

	samples := make([]Sample, n+1)
	dx := (xMax - xMin) / float64(n)
	for i := 0; i <= n; i++ {
		x := xMin + float64(i)*dx
		if i == n {
			x = xMax
		}
		samples[i] = evalSample(f, x)
	}
	return samples, nil
}

func evalSample(f expr.Func, x float64) Sample {
	y, err := f.Eval(x)
	if err != nil || !isFinite(y) {
		return Sample{X: x}
	}
	return Sample{X: x, Y: y, OK: true}
}

// Stats counts present and absent samples.
func Stats(samples []Sample) SampleStats {
	var st SampleStats
	for _, s := range samples {
		if s.OK {
			st.Present++
		} else {
			st.Absent++
		}
	}
	return st
}

// YRange returns the min and max over present samples, or the default
// [-2, 2] when there are none or the range is degenerate.
func YRange(samples []Sample) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range samples {
		if !s.OK {
			continue
		}
		lo = math.Min(lo, s.Y)
		hi = math.Max(hi, s.Y)
	}
	if !isFinite(lo) || !isFinite(hi) || lo == hi {
		return DefaultYMin, DefaultYMax
	}
	return lo, hi
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
