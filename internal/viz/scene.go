package viz

import (
	"math"
	"strconv"

	"github.com/san-kum/integralab/internal/expr"
	"github.com/san-kum/integralab/internal/numeric"
)

// Role tells a surface what an instruction depicts.
type Role int

const (
	RoleAxis Role = iota
	RoleTick
	RoleCurve
	RoleArea
	RoleBound
	RoleSweep
	RoleLabel
	RoleTitle
)

func (r Role) String() string {
	switch r {
	case RoleAxis:
		return "axis"
	case RoleTick:
		return "tick"
	case RoleCurve:
		return "curve"
	case RoleArea:
		return "area"
	case RoleBound:
		return "bound"
	case RoleSweep:
		return "sweep"
	case RoleLabel:
		return "label"
	case RoleTitle:
		return "title"
	}
	return "unknown"
}

// Style carries presentation hints. Surfaces that cannot honor a field
// ignore it.
type Style struct {
	Role     Role
	Stroke   string
	Fill     string
	Opacity  float64
	Width    float64
	FontSize float64
}

var styles = map[Role]Style{
	RoleAxis:  {Role: RoleAxis, Stroke: "#333333", Width: 1},
	RoleTick:  {Role: RoleTick, Stroke: "#333333", Width: 1},
	RoleCurve: {Role: RoleCurve, Stroke: "#4361ee", Width: 2},
	RoleArea:  {Role: RoleArea, Fill: "#4361ee", Opacity: 0.3},
	RoleBound: {Role: RoleBound, Stroke: "#e63946", Width: 2},
	RoleSweep: {Role: RoleSweep, Stroke: "#e63946", Width: 2},
	RoleLabel: {Role: RoleLabel, Fill: "#333333", FontSize: 12},
	RoleTitle: {Role: RoleTitle, Fill: "#333333", FontSize: 14},
}

// StyleFor returns the default style for a role.
func StyleFor(r Role) Style {
	return styles[r]
}

// Surface is anything a scene can be drawn onto.
type Surface interface {
	Polyline(pts []Point, st Style)
	Polygon(pts []Point, st Style)
	Text(at Point, s string, st Style)
}

type Kind int

const (
	KindPolyline Kind = iota
	KindPolygon
	KindText
)

// Item is one recorded drawing instruction.
type Item struct {
	Kind   Kind
	Points []Point
	Text   string
	Style  Style
}

// Scene records drawing instructions in paint order. A Scene is itself a
// Surface, so scenes can be composed.
type Scene struct {
	Frame    Frame
	Viewport Viewport
	Items    []Item
}

func NewScene(m Mapper) *Scene {
	return &Scene{Frame: m.Frame(), Viewport: m.Viewport()}
}

func (s *Scene) Polyline(pts []Point, st Style) {
	if len(pts) == 0 {
		return
	}
	s.Items = append(s.Items, Item{Kind: KindPolyline, Points: clonePoints(pts), Style: st})
}

func (s *Scene) Polygon(pts []Point, st Style) {
	if len(pts) < 3 {
		return
	}
	s.Items = append(s.Items, Item{Kind: KindPolygon, Points: clonePoints(pts), Style: st})
}

func (s *Scene) Text(at Point, text string, st Style) {
	if text == "" {
		return
	}
	s.Items = append(s.Items, Item{Kind: KindText, Points: []Point{at}, Text: text, Style: st})
}

// Render replays every instruction onto dst.
func (s *Scene) Render(dst Surface) {
	for _, it := range s.Items {
		switch it.Kind {
		case KindPolyline:
			dst.Polyline(it.Points, it.Style)
		case KindPolygon:
			dst.Polygon(it.Points, it.Style)
		case KindText:
			dst.Text(it.Points[0], it.Text, it.Style)
		}
	}
}

// ByRole returns the recorded items with the given role.
func (s *Scene) ByRole(r Role) []Item {
	var out []Item
	for _, it := range s.Items {
		if it.Style.Role == r {
			out = append(out, it)
		}
	}
	return out
}

// CurvePaths maps samples to polylines, starting a new path after every
// absent sample. Paths with fewer than two points are dropped.
func CurvePaths(samples []numeric.Sample, m Mapper) [][]Point {
	var paths [][]Point
	var cur []Point
	flush := func() {
		if len(cur) >= 2 {
			paths = append(paths, cur)
		}
		cur = nil
	}
	for _, smp := range samples {
		if !smp.OK {
			flush()
			continue
		}
		cur = append(cur, m.ToSurface(smp.X, smp.Y))
	}
	flush()
	return paths
}

// AreaPolygon outlines the region between f and y = 0 over [lo, hi]
// intersected with the viewport. Absent values sit on the baseline. The
// baseline is clamped to the viewport so the fill stays inside the frame.
func AreaPolygon(f expr.Func, lo, hi float64, m Mapper, steps int) []Point {
	if lo > hi {
		lo, hi = hi, lo
	}
	vp := m.Viewport()
	start := math.Max(vp.XMin, lo)
	end := math.Min(vp.XMax, hi)
	if start >= end {
		return nil
	}
	if steps < 1 {
		steps = numeric.DefaultPartitions
	}

	base := math.Min(math.Max(0, vp.YMin), vp.YMax)
	pts := make([]Point, 0, steps+3)
	for i := 0; i <= steps; i++ {
		x := start + float64(i)/float64(steps)*(end-start)
		if i == steps {
			x = end
		}
		y, err := f.Eval(x)
		if err != nil {
			y = base
		}
		pts = append(pts, m.ToSurface(x, y))
	}
	pts = append(pts, m.ToSurface(end, base), m.ToSurface(start, base))
	return pts
}

// DrawAxes draws the x and y axes through the origin, or along the nearest
// viewport edge when the origin is outside it.
func DrawAxes(dst Surface, m Mapper) {
	vp := m.Viewport()
	y0 := math.Min(math.Max(0, vp.YMin), vp.YMax)
	x0 := math.Min(math.Max(0, vp.XMin), vp.XMax)
	axis := StyleFor(RoleAxis)

	dst.Polyline([]Point{m.ToSurface(vp.XMin, y0), m.ToSurface(vp.XMax, y0)}, axis)
	dst.Polyline([]Point{m.ToSurface(x0, vp.YMin), m.ToSurface(x0, vp.YMax)}, axis)

	label := StyleFor(RoleLabel)
	end := m.ToSurface(vp.XMax, y0)
	dst.Text(Point{X: end.X - 10, Y: end.Y + 20}, "x", label)
	top := m.ToSurface(x0, vp.YMax)
	dst.Text(Point{X: top.X - 20, Y: top.Y + 10}, "y", label)
}

// DrawTicks places evenly spaced ticks along the bottom and left edges of
// the padded area, labelled with one decimal.
func DrawTicks(dst Surface, m Mapper, nx, ny int) {
	vp := m.Viewport()
	tick := StyleFor(RoleTick)
	label := StyleFor(RoleLabel)
	bottom := m.ToSurfaceY(vp.YMin)
	left := m.ToSurfaceX(vp.XMin)

	for i := 0; i <= nx && nx > 0; i++ {
		x := vp.XMin + float64(i)/float64(nx)*(vp.XMax-vp.XMin)
		sx := m.ToSurfaceX(x)
		dst.Polyline([]Point{{sx, bottom - 5}, {sx, bottom + 5}}, tick)
		dst.Text(Point{X: sx - 10, Y: bottom + 20}, strconv.FormatFloat(x, 'f', 1, 64), label)
	}
	for i := 0; i <= ny && ny > 0; i++ {
		y := vp.YMin + float64(i)/float64(ny)*(vp.YMax-vp.YMin)
		sy := m.ToSurfaceY(y)
		dst.Polyline([]Point{{left - 5, sy}, {left + 5, sy}}, tick)
		dst.Text(Point{X: left - 25, Y: sy + 5}, strconv.FormatFloat(y, 'f', 1, 64), label)
	}
}

func clonePoints(pts []Point) []Point {
	out := make([]Point, len(pts))
	copy(out, pts)
	return out
}
