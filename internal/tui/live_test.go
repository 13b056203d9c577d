package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/san-kum/integralab/internal/animate"
	"github.com/san-kum/integralab/internal/engine"
)

func TestLiveRendererPlay(t *testing.T) {
	var out bytes.Buffer
	r := NewLiveRenderer(&out, "x^2", 1000)
	sess, err := engine.New().NewAnimationSession("x^2", 0, 2, 0.5, animate.WithFrameFunc(r.OnFrame))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r.Play(sess)

	if sess.Status() != animate.Finished {
		t.Fatalf("expected finished, got %s", sess.Status())
	}
	got := out.String()
	if !strings.HasPrefix(got, hideCursor) || !strings.HasSuffix(got, showCursor) {
		t.Error("expected cursor to be hidden and restored")
	}
	for _, want := range []string{"∫ x^2 dx", "[finished]", "x = 2.00", "A(2.0) = 1.750", "A'(x) = f(x)"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in output", want)
		}
	}
	if len(r.area) != 4 {
		t.Errorf("expected 4 area points, got %d", len(r.area))
	}
}

func TestLiveRendererThrottles(t *testing.T) {
	var out bytes.Buffer
	r := NewLiveRenderer(&out, "x", 1)
	frame := animate.Frame{State: animate.State{CurrentX: 0.5, Steps: 1, YOK: true, Y: 0.5}, Status: animate.Running, A: 0, B: 1}

	r.OnFrame(frame)
	first := strings.Count(out.String(), clearScreen)
	frame.Steps = 2
	r.OnFrame(frame)
	if got := strings.Count(out.String(), clearScreen); got != first {
		t.Errorf("expected throttled frame to be skipped, got %d draws", got)
	}

	frame.Status = animate.Finished
	r.OnFrame(frame)
	if got := strings.Count(out.String(), clearScreen); got != first+1 {
		t.Errorf("expected final frame to be drawn, got %d draws", got)
	}
}

func TestLiveRendererRestartClearsHistory(t *testing.T) {
	var out bytes.Buffer
	r := NewLiveRenderer(&out, "x", 60)
	r.OnFrame(animate.Frame{State: animate.State{Steps: 1, AccumulatedArea: 1}, B: 1})
	r.OnFrame(animate.Frame{State: animate.State{Steps: 0}, B: 1})
	if len(r.area) != 0 {
		t.Errorf("expected empty history after restart, got %d", len(r.area))
	}
}

func TestSparkline(t *testing.T) {
	tests := []struct {
		data []float64
		want string
	}{
		{nil, ""},
		{[]float64{1, 1, 1}, "▁▁▁"},
		{[]float64{0, 7}, "▁█"},
	}
	for _, tt := range tests {
		if got := sparkline(tt.data, 10); got != tt.want {
			t.Errorf("sparkline(%v): expected %q, got %q", tt.data, tt.want, got)
		}
	}
}
