package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/san-kum/integralab/internal/viz"
)

func testScene(t *testing.T) *viz.Scene {
	t.Helper()
	m, err := viz.NewMapper(viz.Viewport{XMin: 0, XMax: 1, YMin: 0, YMax: 1}, viz.Frame{Width: 200, Height: 100, Padding: 10})
	if err != nil {
		t.Fatal(err)
	}
	s := viz.NewScene(m)
	s.Polygon([]viz.Point{{X: 10, Y: 90}, {X: 190, Y: 10}, {X: 190, Y: 90}}, viz.StyleFor(viz.RoleArea))
	s.Polyline([]viz.Point{{X: 10, Y: 90}, {X: 100, Y: 50}, {X: 190, Y: 10}}, viz.StyleFor(viz.RoleCurve))
	s.Polyline([]viz.Point{{X: 190, Y: 90}, {X: 190, Y: 10}}, viz.StyleFor(viz.RoleBound))
	s.Text(viz.Point{X: 20, Y: 20}, "≈ 0.5000 <a&b>", viz.StyleFor(viz.RoleTitle))
	return s
}

func TestSceneToSVG(t *testing.T) {
	svg := SceneToSVG(testScene(t))
	out := svg.String()

	if svg.Paths() != 3 {
		t.Errorf("expected 3 paths, got %d", svg.Paths())
	}
	if got := strings.Count(out, "<path "); got != 3 {
		t.Errorf("expected 3 path elements, got %d", got)
	}
	if !strings.Contains(out, `width="200" height="100"`) {
		t.Error("expected frame size in the svg header")
	}
	if !strings.Contains(out, `d="M10.0,90.0 L100.0,50.0 L190.0,10.0"`) {
		t.Errorf("expected curve path data in %s", out)
	}
	if !strings.Contains(out, `fill-opacity="0.30"`) {
		t.Error("expected translucent fill for the area")
	}
	if !strings.Contains(out, "&lt;a&amp;b&gt;") {
		t.Error("expected label text to be escaped")
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Error("expected closed svg document")
	}
}

func TestSVGSkipsDegenerateShapes(t *testing.T) {
	svg := NewSVG(viz.Frame{Width: 10, Height: 10})
	svg.Polyline([]viz.Point{{X: 1, Y: 1}}, viz.StyleFor(viz.RoleCurve))
	svg.Polygon([]viz.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}, viz.StyleFor(viz.RoleArea))
	if svg.Paths() != 0 {
		t.Errorf("expected no paths, got %d", svg.Paths())
	}
}

func TestSVGWriteTo(t *testing.T) {
	svg := SceneToSVG(testScene(t))
	var buf bytes.Buffer
	n, err := svg.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(buf.Len()) || buf.String() != svg.String() {
		t.Error("WriteTo should write the full document")
	}
}

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	out := CanvasToSVG(c, 2)
	if got := strings.Count(out, "<circle"); got != 2 {
		t.Errorf("expected 2 dots, got %d", got)
	}
	if CanvasToSVG(nil, 1) != "" {
		t.Error("expected empty output for nil canvas")
	}
}
