package viz

import (
	"math"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const (
	blank = rune(0x2800)

	// wideTail marks the cell covered by the right half of a wide rune.
	wideTail = rune(-1)
)

// Canvas is a Braille surface. One cell holds 2x4 sub-pixels, so the
// drawable area is (Width*2) x (Height*4). Text is overlaid on whole cells.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	overlay       [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:   w,
		Height:  h,
		Grid:    make([][]rune, h),
		overlay: make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.overlay[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// Frame returns the sub-pixel frame of the canvas with the given padding.
func (c *Canvas) Frame(padding float64) Frame {
	return Frame{Width: float64(c.Width * 2), Height: float64(c.Height * 4), Padding: padding}
}

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	subX := x % 2
	subY := y % 4

	c.Grid[row][col] |= rune(pixelMap[subY][subX])
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.overlay[i][j] = 0
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) Polyline(pts []Point, _ Style) {
	if len(pts) == 1 {
		c.Set(round(pts[0].X), round(pts[0].Y))
		return
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		if !drawable(a) || !drawable(b) {
			continue
		}
		c.DrawLine(round(a.X), round(a.Y), round(b.X), round(b.Y))
	}
}

// Polygon fills with a checkerboard of dots so outlines drawn on top stay
// readable. Uses the even-odd rule on pixel centres.
func (c *Canvas) Polygon(pts []Point, _ Style) {
	if len(pts) < 3 {
		return
	}
	for _, p := range pts {
		if !drawable(p) {
			return
		}
	}
	maxY := c.Height * 4
	maxX := c.Width * 2
	xs := make([]float64, 0, len(pts))
	for y := 0; y < maxY; y++ {
		cy := float64(y) + 0.5
		xs = xs[:0]
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			if (a.Y <= cy) == (b.Y <= cy) {
				continue
			}
			xs = append(xs, a.X+(cy-a.Y)/(b.Y-a.Y)*(b.X-a.X))
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			from := int(math.Ceil(xs[i] - 0.5))
			to := int(math.Floor(xs[i+1] - 0.5))
			for x := max(from, 0); x <= to && x < maxX; x++ {
				if (x+y)%2 == 0 {
					c.Set(x, y)
				}
			}
		}
	}
}

// Text writes s into whole cells starting at the cell containing at.
// Wide runes take two cells; text past the right edge is cut.
func (c *Canvas) Text(at Point, s string, _ Style) {
	if !drawable(at) {
		return
	}
	row := int(math.Floor(at.Y / 4))
	col := int(math.Floor(at.X / 2))
	if row < 0 || row >= c.Height {
		return
	}
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > c.Width {
			return
		}
		if col >= 0 {
			c.overlay[row][col] = r
			if w == 2 {
				c.overlay[row][col+1] = wideTail
			}
		}
		col += w
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.Grid {
		for j, cell := range row {
			switch o := c.overlay[i][j]; o {
			case wideTail:
			case 0:
				b.WriteRune(cell)
			default:
				b.WriteRune(o)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func drawable(p Point) bool {
	return finite(p.X) && finite(p.Y) && math.Abs(p.X) < 1e6 && math.Abs(p.Y) < 1e6
}

func round(v float64) int {
	return int(math.Round(v))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
