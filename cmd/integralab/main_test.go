package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestIntegrateCommand(t *testing.T) {
	out, err := run(t, "integrate", "x^2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "x^3/3 + C") {
		t.Errorf("expected antiderivative in output, got %q", out)
	}
}

func TestIntegrateUnmatched(t *testing.T) {
	out, err := run(t, "integrate", "tan(x)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "no rule") {
		t.Errorf("expected guidance, got %q", out)
	}
}

func TestAreaCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"area", "x^2", "--from", "0", "--to", "2", "--n", "1000"}, "≈ 2.666666"},
		{[]string{"area", "x^2", "--from", "0", "--to", "2", "--rule", "simpson"}, "rule: simpson"},
		{[]string{"area", "sqrt(x)", "--from", "-1", "--to", "1"}, "skipped 50 undefined points"},
	}
	for _, tt := range tests {
		out, err := run(t, tt.args...)
		if err != nil {
			t.Fatalf("%v: unexpected error: %v", tt.args, err)
		}
		if !strings.Contains(out, tt.want) {
			t.Errorf("%v: expected %q in %q", tt.args, tt.want, out)
		}
	}
}

func TestAreaUnknownRule(t *testing.T) {
	if _, err := run(t, "area", "x", "--rule", "gauss"); err == nil {
		t.Error("expected error for unknown rule")
	}
}

func TestPlotCommand(t *testing.T) {
	out, err := run(t, "plot", "sin(x)", "--samples", "50")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "51 points, 0 undefined") {
		t.Errorf("expected sample stats, got %q", out)
	}

	out, err = run(t, "plot", "1/x", "--canvas", "--samples", "100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "1 undefined") {
		t.Errorf("expected the pole to be counted, got %q", out)
	}
}

func TestCompareCommand(t *testing.T) {
	out, err := run(t, "compare", "x^2", "midpoint", "trapezoid", "--to", "3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"RULE", "midpoint", "trapezoid"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
	if strings.Contains(out, "left") {
		t.Error("expected only the requested rules")
	}
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()

	svg := filepath.Join(dir, "area.svg")
	if _, err := run(t, "export", "x^2", "--from", "0", "--to", "2", "--out", svg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(svg)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "≈ 2.666") {
		t.Error("expected approximation label in svg")
	}

	js := filepath.Join(dir, "area.json")
	if _, err := run(t, "export", "x^2", "--to", "2", "--format", "json", "--out", js); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err = os.ReadFile(js)
	if err != nil {
		t.Fatal(err)
	}
	var report map[string]any
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if report["expression"] != "x^2" {
		t.Errorf("expected expression x^2, got %v", report["expression"])
	}

	if _, err := run(t, "export", "x", "--format", "gif", "--out", filepath.Join(dir, "a.gif")); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestPresetsCommand(t *testing.T) {
	out, err := run(t, "presets", "animation")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "fundamental") || !strings.Contains(out, "0.5*sin(x)+1") {
		t.Errorf("expected fundamental preset, got %q", out)
	}
	if _, err := run(t, "presets", "nope"); err == nil {
		t.Error("expected error for unknown group")
	}
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lab.toml")
	if err := os.WriteFile(path, []byte("[integral]\npartitions = 10\nrule = \"left\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "--config", path, "area", "x", "--to", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "rule: left, partitions: 10") {
		t.Errorf("expected config values, got %q", out)
	}
}

func TestAnimatePlain(t *testing.T) {
	out, err := run(t, "animate", "x", "--from", "0", "--to", "1", "--step", "0.25", "--fps", "1000", "--plain")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "A(1.0) = 0.375") {
		t.Errorf("expected final area, got %q", out)
	}
}

func TestAnimateUnknownPreset(t *testing.T) {
	if _, err := run(t, "animate", "--preset", "nope", "--plain"); err == nil {
		t.Error("expected error for unknown preset")
	}
}
