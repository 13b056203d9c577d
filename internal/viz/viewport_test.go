package viz

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/integralab/internal/numeric"
)

func TestDetectViewport(t *testing.T) {
	samples := []numeric.Sample{{X: 0, Y: -1, OK: true}, {X: 1, OK: false}, {X: 2, Y: 3, OK: true}}
	vp, err := DetectViewport(samples, 0, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Viewport{XMin: 0, XMax: 2, YMin: -1, YMax: 3}
	if vp != want {
		t.Errorf("expected %v, got %v", want, vp)
	}
}

func TestDetectViewportFallback(t *testing.T) {
	tests := []struct {
		name    string
		samples []numeric.Sample
	}{
		{"no samples", nil},
		{"all absent", []numeric.Sample{{X: 0}, {X: 1}}},
		{"constant", []numeric.Sample{{X: 0, Y: 1, OK: true}, {X: 1, Y: 1, OK: true}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp, err := DetectViewport(tt.samples, -1, 1)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if vp.YMin != -2 || vp.YMax != 2 {
				t.Errorf("expected y range [-2, 2], got [%v, %v]", vp.YMin, vp.YMax)
			}
		})
	}
}

func TestDetectViewportInvalid(t *testing.T) {
	for _, r := range [][2]float64{{1, 1}, {2, 1}, {math.NaN(), 1}} {
		if _, err := DetectViewport(nil, r[0], r[1]); !errors.Is(err, ErrInvalidViewport) {
			t.Errorf("range %v: expected ErrInvalidViewport, got %v", r, err)
		}
	}
}

func TestFrameValid(t *testing.T) {
	if !(Frame{Width: 600, Height: 400, Padding: 30}).Valid() {
		t.Error("expected 600x400 padding 30 to be valid")
	}
	if (Frame{Width: 60, Height: 400, Padding: 30}).Valid() {
		t.Error("expected padding that consumes the width to be invalid")
	}
}
