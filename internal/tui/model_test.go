package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/integralab/internal/animate"
	"github.com/san-kum/integralab/internal/engine"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	e := engine.New()
	sess, err := e.NewAnimationSession("x^2", 0, 2, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return NewModel(e, sess, "x^2", 60)
}

func press(m tea.Model, key string) (tea.Model, tea.Cmd) {
	if key == " " {
		return m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	}
	return m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

func TestTickAdvancesSession(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Error("expected next tick to be scheduled")
	}
	got := next.(Model).Session().State()
	if got.Steps != 1 {
		t.Errorf("expected 1 step, got %d", got.Steps)
	}
	if got.CurrentX != 0.5 {
		t.Errorf("expected x 0.5, got %f", got.CurrentX)
	}
	if len(next.(Model).history) != 1 {
		t.Errorf("expected 1 history point, got %d", len(next.(Model).history))
	}
}

func TestTickStopsAtEnd(t *testing.T) {
	var m tea.Model = newTestModel(t)
	for i := 0; i < 10; i++ {
		m, _ = m.Update(TickMsg(time.Now()))
	}
	sess := m.(Model).Session()
	if sess.Status() != animate.Finished {
		t.Errorf("expected finished, got %s", sess.Status())
	}
	if sess.State().Steps != 4 {
		t.Errorf("expected 4 steps, got %d", sess.State().Steps)
	}
	if !strings.Contains(m.View(), "FINISHED") {
		t.Error("expected view to report FINISHED")
	}
}

func TestSpaceTogglesPause(t *testing.T) {
	m := newTestModel(t)
	next, _ := press(m, " ")
	if next.(Model).Session().Status() != animate.Paused {
		t.Fatalf("expected paused, got %s", next.(Model).Session().Status())
	}
	next, _ = next.Update(TickMsg(time.Now()))
	if next.(Model).Session().State().Steps != 0 {
		t.Error("expected paused session not to advance")
	}
	if !strings.Contains(next.View(), "PAUSED") {
		t.Error("expected view to report PAUSED")
	}
	next, _ = press(next, " ")
	if next.(Model).Session().Status() != animate.Running {
		t.Errorf("expected running, got %s", next.(Model).Session().Status())
	}
}

func TestRestart(t *testing.T) {
	var m tea.Model = newTestModel(t)
	m, _ = m.Update(TickMsg(time.Now()))
	m, _ = m.Update(TickMsg(time.Now()))
	m, _ = press(m, "r")
	st := m.(Model).Session().State()
	if st.Steps != 0 || st.CurrentX != 0 || st.AccumulatedArea != 0 {
		t.Errorf("expected reset state, got %+v", st)
	}
	if len(m.(Model).history) != 0 {
		t.Errorf("expected empty history, got %d", len(m.(Model).history))
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := press(m, "q")
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestThemeCycle(t *testing.T) {
	defer SetTheme("classic")
	m := newTestModel(t)
	press(m, "t")
	if CurrentTheme.Name != "retro" {
		t.Errorf("expected retro, got %s", CurrentTheme.Name)
	}
	press(m, "t")
	press(m, "t")
	if CurrentTheme.Name != "classic" {
		t.Errorf("expected classic, got %s", CurrentTheme.Name)
	}
}

func TestSnapshot(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	m := newTestModel(t)
	next, _ := press(m, "s")
	if !strings.HasPrefix(next.(Model).message, "saved ") {
		t.Fatalf("expected saved message, got %q", next.(Model).message)
	}
	files, err := filepath.Glob(filepath.Join(dir, "integralab-*.svg"))
	if err != nil || len(files) != 1 {
		t.Fatalf("expected 1 snapshot, got %v (%v)", files, err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("expected svg document")
	}
}

func TestViewShowsValues(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	for _, want := range []string{"x^2", "RUNNING", "A(x)", "f(x)", "0/4"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
	next, _ := press(m, "?")
	if !strings.Contains(next.View(), "KEYBOARD SHORTCUTS") {
		t.Error("expected help overlay")
	}
}

func TestCanvasDrawsCurve(t *testing.T) {
	m := newTestModel(t)
	blank := strings.Repeat(string(rune(0x2800)), width)
	drawn := false
	for _, line := range strings.Split(m.canvas.String(), "\n") {
		if line != "" && line != blank {
			drawn = true
		}
	}
	if !drawn {
		t.Error("expected curve on canvas")
	}
}

func TestMenuStartsPreset(t *testing.T) {
	e := engine.New()
	menu := NewMenu(e)
	if len(menu.presets) == 0 {
		t.Fatal("expected animation presets")
	}
	var next tea.Model = menu
	for i := 0; i < 2; i++ {
		next, _ = next.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := next.(Menu)
	if got.state != stateLive {
		t.Fatalf("expected live state, got %d (err %v)", got.state, got.err)
	}
	if cmd == nil {
		t.Error("expected tick command")
	}
	if e.Config().Animation.Expression != "x^2" {
		t.Errorf("expected parabola preset applied, got %s", e.Config().Animation.Expression)
	}
}
