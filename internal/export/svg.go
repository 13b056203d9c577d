package export

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/san-kum/integralab/internal/viz"
)

// SVG is a viz.Surface that accumulates SVG elements.
type SVG struct {
	frame viz.Frame
	body  strings.Builder
	paths int
}

func NewSVG(frame viz.Frame) *SVG {
	return &SVG{frame: frame}
}

// Paths returns the number of path elements written so far.
func (s *SVG) Paths() int { return s.paths }

func (s *SVG) Polyline(pts []viz.Point, st viz.Style) {
	if len(pts) < 2 {
		return
	}
	stroke := st.Stroke
	if stroke == "" {
		stroke = "#333333"
	}
	width := st.Width
	if width <= 0 {
		width = 1
	}
	fmt.Fprintf(&s.body, `<path class="%s" fill="none" stroke="%s" stroke-width="%.1f" d="%s"/>`+"\n",
		st.Role, stroke, width, pathData(pts, false))
	s.paths++
}

func (s *SVG) Polygon(pts []viz.Point, st viz.Style) {
	if len(pts) < 3 {
		return
	}
	fill := st.Fill
	if fill == "" {
		fill = "#4361ee"
	}
	opacity := st.Opacity
	if opacity <= 0 {
		opacity = 1
	}
	fmt.Fprintf(&s.body, `<path class="%s" fill="%s" fill-opacity="%.2f" stroke="none" d="%s"/>`+"\n",
		st.Role, fill, opacity, pathData(pts, true))
	s.paths++
}

func (s *SVG) Text(at viz.Point, text string, st viz.Style) {
	fill := st.Fill
	if fill == "" {
		fill = "#333333"
	}
	size := st.FontSize
	if size <= 0 {
		size = 12
	}
	fmt.Fprintf(&s.body, `<text class="%s" x="%.1f" y="%.1f" font-family="sans-serif" font-size="%.0f" fill="%s">%s</text>`+"\n",
		st.Role, at.X, at.Y, size, fill, html.EscapeString(text))
}

func (s *SVG) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, s.frame.Width, s.frame.Height, s.frame.Width, s.frame.Height))
	sb.WriteString(s.body.String())
	sb.WriteString("</svg>\n")
	return sb.String()
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

// SceneToSVG renders a scene onto a fresh SVG document.
func SceneToSVG(scene *viz.Scene) *SVG {
	s := NewSVG(scene.Frame)
	scene.Render(s)
	return s
}

func pathData(pts []viz.Point, closed bool) string {
	var sb strings.Builder
	for i, p := range pts {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("M%.1f,%.1f", p.X, p.Y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", p.X, p.Y))
		}
	}
	if closed {
		sb.WriteString(" Z")
	}
	return sb.String()
}

// CanvasToSVG converts a Braille canvas to SVG format, one circle per dot.
// Text overlays are not included.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<g fill="#4361ee">
`, width, height, width, height))

	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
