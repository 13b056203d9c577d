package animate

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/san-kum/integralab/internal/expr"
)

var (
	ErrInvalidRange = errors.New("animate: require finite a < b")
	ErrInvalidStep  = errors.New("animate: step must be positive and finite")
	ErrNilFunc      = errors.New("animate: nil function")
)

type Status int

const (
	Running Status = iota
	Paused
	Finished
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Finished:
		return "finished"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// State is the observable progress of a session. Y is f(CurrentX) when YOK
// is true.
type State struct {
	CurrentX        float64 `json:"currentX"`
	AccumulatedArea float64 `json:"accumulatedArea"`
	Paused          bool    `json:"paused"`
	Steps           int     `json:"steps"`
	Skipped         int     `json:"skipped"`
	Y               float64 `json:"y"`
	YOK             bool    `json:"yOk"`
}

// Frame is passed to the frame callback after every tick.
type Frame struct {
	State
	Status Status
	A, B   float64
}

type Option func(*Session)

// WithFrameFunc registers a callback invoked after every Step and Restart,
// including ticks that changed nothing.
func WithFrameFunc(fn func(Frame)) Option {
	return func(s *Session) {
		s.onFrame = fn
	}
}

type Session struct {
	id      uuid.UUID
	f       expr.Func
	a, b    float64
	step    float64
	total   int
	onFrame func(Frame)

	k       int
	x       float64
	area    float64
	skipped int
	y       float64
	yok     bool
	status  Status
}

func New(f expr.Func, a, b, step float64, opts ...Option) (*Session, error) {
	if f == nil {
		return nil, ErrNilFunc
	}
	if !finite(a) || !finite(b) || a >= b {
		return nil, fmt.Errorf("%w: got [%g, %g]", ErrInvalidRange, a, b)
	}
	if !finite(step) || step <= 0 {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidStep, step)
	}

	s := &Session{
		id:    uuid.New(),
		f:     f,
		a:     a,
		b:     b,
		step:  step,
		total: stepCount(a, b, step),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reset()
	return s, nil
}

// stepCount is ceil((b-a)/step), ignoring rounding noise just above an
// integer.
func stepCount(a, b, step float64) int {
	r := (b - a) / step
	n := math.Ceil(r)
	if n-r > 1-1e-9 {
		n--
	}
	if n < 1 {
		n = 1
	}
	return int(n)
}

func (s *Session) ID() string             { return s.id.String() }
func (s *Session) Bounds() (a, b float64) { return s.a, s.b }
func (s *Session) StepSize() float64      { return s.step }
func (s *Session) Func() expr.Func        { return s.f }
func (s *Session) Status() Status         { return s.status }

// MaxSteps is the number of Step calls needed to reach b from a.
func (s *Session) MaxSteps() int { return s.total }

func (s *Session) State() State {
	return State{
		CurrentX:        s.x,
		AccumulatedArea: s.area,
		Paused:          s.status == Paused,
		Steps:           s.k,
		Skipped:         s.skipped,
		Y:               s.y,
		YOK:             s.yok,
	}
}

// Step advances one tick. It is a no-op unless the session is running.
func (s *Session) Step() State {
	if s.status == Running {
		s.advance()
	}
	s.emit()
	return s.State()
}

func (s *Session) advance() {
	if s.x >= s.b {
		s.status = Finished
		return
	}

	next := s.a + float64(s.k+1)*s.step
	if s.k+1 >= s.total || next > s.b {
		next = s.b
	}
	if y, err := s.f.Eval(s.x); err == nil {
		s.area += y * (next - s.x)
	} else {
		s.skipped++
	}

	s.k++
	s.x = next
	s.sample()
	if s.x >= s.b {
		s.status = Finished
	}
}

// Pause stops a running session. It reports whether the state changed.
func (s *Session) Pause() bool {
	if s.status != Running {
		return false
	}
	s.status = Paused
	return true
}

// Resume continues a paused session. It reports whether the state changed.
func (s *Session) Resume() bool {
	if s.status != Paused {
		return false
	}
	s.status = Running
	return true
}

// Toggle pauses a running session or resumes a paused one.
func (s *Session) Toggle() bool {
	if s.status == Running {
		return s.Pause()
	}
	return s.Resume()
}

// Restart returns to x = a with no accumulated area, from any state.
func (s *Session) Restart() {
	s.reset()
	s.emit()
}

func (s *Session) reset() {
	s.k = 0
	s.x = s.a
	s.area = 0
	s.skipped = 0
	s.status = Running
	s.sample()
}

func (s *Session) sample() {
	y, err := s.f.Eval(s.x)
	s.y, s.yok = y, err == nil
	if !s.yok {
		s.y = 0
	}
}

func (s *Session) emit() {
	if s.onFrame == nil {
		return
	}
	s.onFrame(Frame{State: s.State(), Status: s.status, A: s.a, B: s.b})
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
