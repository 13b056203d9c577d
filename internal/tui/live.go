package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/san-kum/integralab/internal/animate"
)

const (
	plainWidth  = 50
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer prints session frames straight to a writer with ANSI escapes.
// It needs no alternate screen, so it works over plain pipes and in CI logs.
// Register OnFrame with animate.WithFrameFunc.
type LiveRenderer struct {
	out       io.Writer
	expr      string
	frameRate int
	lastFrame time.Time
	area      []float64
}

func NewLiveRenderer(out io.Writer, expr string, frameRate int) *LiveRenderer {
	if frameRate <= 0 {
		frameRate = 60
	}
	return &LiveRenderer{
		out:       out,
		expr:      expr,
		frameRate: frameRate,
		area:      make([]float64, 0, historyCapacity),
	}
}

// OnFrame records the frame and redraws at most frameRate times a second.
// The last frame of a sweep is always drawn.
func (r *LiveRenderer) OnFrame(f animate.Frame) {
	if f.Steps == 0 {
		r.area = r.area[:0]
	} else {
		r.area = append(r.area, f.AccumulatedArea)
		if len(r.area) > historyCapacity {
			r.area = r.area[1:]
		}
	}

	if f.Status != animate.Finished && time.Since(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
		return
	}
	r.lastFrame = time.Now()
	r.render(f)
}

func (r *LiveRenderer) render(f animate.Frame) {
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  ∫ %s dx  [%s]\n", r.expr, f.Status))
	b.WriteString("  " + strings.Repeat("-", plainWidth) + "\n")

	filled := int((f.CurrentX - f.A) / (f.B - f.A) * plainWidth)
	if filled > plainWidth {
		filled = plainWidth
	}
	if filled < 0 {
		filled = 0
	}
	b.WriteString("  " + strings.Repeat("#", filled) + strings.Repeat(".", plainWidth-filled) + "\n")
	b.WriteString("  " + sparkline(r.area, plainWidth) + "\n")
	b.WriteString("  " + strings.Repeat("-", plainWidth) + "\n")

	fx := "undefined"
	if f.YOK {
		fx = fmt.Sprintf("%.3f", f.Y)
	}
	b.WriteString(fmt.Sprintf("  x = %.2f  A(x) = %.3f  f(x) = %s\n", f.CurrentX, f.AccumulatedArea, fx))
	if f.Status == animate.Finished {
		b.WriteString(fmt.Sprintf("  A(%.1f) = %.3f   A'(x) = f(x)\n", f.B, f.AccumulatedArea))
	}
	fmt.Fprint(r.out, b.String())
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.out, showCursor) }

// Play steps sess at the renderer's frame rate until it finishes.
func (r *LiveRenderer) Play(sess *animate.Session) {
	r.Start()
	defer r.Stop()

	ticker := time.NewTicker(time.Second / time.Duration(r.frameRate))
	defer ticker.Stop()
	for sess.Status() != animate.Finished {
		<-ticker.C
		sess.Step()
	}
}

func sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rang := maxVal - minVal
	if rang == 0 {
		rang = 1
	}
	step := len(data) / width
	if step < 1 {
		step = 1
	}
	var sb strings.Builder
	for i := 0; i < width && i*step < len(data); i++ {
		idx := int((data[i*step] - minVal) / rang * 7)
		if idx > 7 {
			idx = 7
		}
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}
