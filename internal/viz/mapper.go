package viz

import "fmt"

// Point is a location in surface coordinates.
type Point struct {
	X, Y float64
}

// Mapper converts between domain and surface coordinates.
type Mapper struct {
	vp    Viewport
	frame Frame
}

func NewMapper(vp Viewport, frame Frame) (Mapper, error) {
	if !vp.Valid() {
		return Mapper{}, fmt.Errorf("%w: %s", ErrInvalidViewport, vp)
	}
	if !frame.Valid() {
		return Mapper{}, fmt.Errorf("%w: %gx%g padding %g", ErrInvalidFrame, frame.Width, frame.Height, frame.Padding)
	}
	return Mapper{vp: vp, frame: frame}, nil
}

func (m Mapper) Viewport() Viewport { return m.vp }
func (m Mapper) Frame() Frame       { return m.frame }

func (m Mapper) innerWidth() float64  { return m.frame.Width - 2*m.frame.Padding }
func (m Mapper) innerHeight() float64 { return m.frame.Height - 2*m.frame.Padding }

func (m Mapper) ToSurfaceX(x float64) float64 {
	return m.frame.Padding + (x-m.vp.XMin)/(m.vp.XMax-m.vp.XMin)*m.innerWidth()
}

// ToSurfaceY flips the axis so larger y values are drawn higher.
func (m Mapper) ToSurfaceY(y float64) float64 {
	return m.frame.Height - m.frame.Padding - (y-m.vp.YMin)/(m.vp.YMax-m.vp.YMin)*m.innerHeight()
}

func (m Mapper) FromSurfaceX(sx float64) float64 {
	return m.vp.XMin + (sx-m.frame.Padding)/m.innerWidth()*(m.vp.XMax-m.vp.XMin)
}

func (m Mapper) FromSurfaceY(sy float64) float64 {
	return m.vp.YMin + (m.frame.Height-m.frame.Padding-sy)/m.innerHeight()*(m.vp.YMax-m.vp.YMin)
}

func (m Mapper) ToSurface(x, y float64) Point {
	return Point{X: m.ToSurfaceX(x), Y: m.ToSurfaceY(y)}
}
