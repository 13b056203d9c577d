package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/integralab/internal/numeric"
	"github.com/san-kum/integralab/internal/symbolic"
	"github.com/san-kum/integralab/internal/viz"
)

func testReport() *Report {
	res, _ := symbolic.IntegrateText("x^2")
	return &Report{
		Expression:     "x^2",
		Lower:          0,
		Upper:          2,
		Antiderivative: &res,
		Approximation:  numeric.Approximation{Rule: "midpoint", Value: 2.6666, Partitions: 100},
		Viewport:       viz.Viewport{XMin: -1, XMax: 3, YMin: 0, YMax: 9},
		Stats:          numeric.SampleStats{Present: 2, Absent: 1},
		Samples:        []numeric.Sample{{X: 0, Y: 0, OK: true}, {X: 1}, {X: 2, Y: 4, OK: true}},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, testReport()); err != nil {
		t.Fatal(err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	for _, key := range []string{"expression", "approximation", "viewport", "samples", "antiderivative"} {
		if _, ok := got[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
	anti := got["antiderivative"].(map[string]any)
	if anti["formula"] != "x^3/3 + C" {
		t.Errorf("expected formula x^3/3 + C, got %v", anti["formula"])
	}
}

func TestSaveJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	if err := SaveJSON(path, testReport()); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		t.Fatal(err)
	}
	if r.Approximation.Rule != "midpoint" || len(r.Samples) != 3 || r.Samples[1].OK {
		t.Errorf("unexpected report %+v", r)
	}
}
