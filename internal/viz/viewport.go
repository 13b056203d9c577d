package viz

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/integralab/internal/numeric"
)

var (
	ErrInvalidViewport = errors.New("viz: invalid viewport")
	ErrInvalidFrame    = errors.New("viz: frame has no drawable area")
)

// Viewport is the domain window. XMin < XMax and YMin < YMax.
type Viewport struct {
	XMin float64 `json:"xMin"`
	XMax float64 `json:"xMax"`
	YMin float64 `json:"yMin"`
	YMax float64 `json:"yMax"`
}

func (v Viewport) Valid() bool {
	return finite(v.XMin) && finite(v.XMax) && finite(v.YMin) && finite(v.YMax) &&
		v.XMin < v.XMax && v.YMin < v.YMax
}

// ContainsX reports whether x lies inside the horizontal range.
func (v Viewport) ContainsX(x float64) bool {
	return x >= v.XMin && x <= v.XMax
}

func (v Viewport) String() string {
	return fmt.Sprintf("[%g, %g] x [%g, %g]", v.XMin, v.XMax, v.YMin, v.YMax)
}

// Frame is the surface rectangle. Padding is applied on all four sides.
type Frame struct {
	Width   float64 `json:"width" yaml:"width"`
	Height  float64 `json:"height" yaml:"height"`
	Padding float64 `json:"padding" yaml:"padding"`
}

func (f Frame) Valid() bool {
	return f.Width-2*f.Padding > 0 && f.Height-2*f.Padding > 0
}

// DetectViewport uses the given x range and the y range of the present
// samples, falling back to [-2, 2] when that range is empty or flat.
func DetectViewport(samples []numeric.Sample, xMin, xMax float64) (Viewport, error) {
	yMin, yMax := numeric.YRange(samples)
	vp := Viewport{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax}
	if !vp.Valid() {
		return Viewport{}, fmt.Errorf("%w: %s", ErrInvalidViewport, vp)
	}
	return vp, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
