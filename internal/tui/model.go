package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/integralab/internal/animate"
	"github.com/san-kum/integralab/internal/engine"
	"github.com/san-kum/integralab/internal/export"
	"github.com/san-kum/integralab/internal/viz"
)

const (
	width           = 60
	height          = 20
	canvasPadding   = 4
	historyCapacity = 600
)

type TickMsg time.Time

// shapes renders a scene on the canvas without its labels. Label offsets
// are tuned for the exported frame and the side panel shows the values.
type shapes struct{ *viz.Canvas }

func (shapes) Text(viz.Point, string, viz.Style) {}

// Model drives one accumulation session and its terminal view.
type Model struct {
	engine   *engine.Engine
	sess     *animate.Session
	expr     string
	canvas   *viz.Canvas
	fps      int
	history  []float64
	showHelp bool
	message  string
	err      error
}

// NewModel wraps sess for display. fps <= 0 falls back to 60.
func NewModel(e *engine.Engine, sess *animate.Session, expr string, fps int) Model {
	if fps <= 0 {
		fps = 60
	}
	m := Model{
		engine:  e,
		sess:    sess,
		expr:    expr,
		canvas:  viz.NewCanvas(width, height),
		fps:     fps,
		history: make([]float64, 0, historyCapacity),
	}
	m.draw()
	return m
}

func (m Model) Session() *animate.Session { return m.sess }

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and advances the session.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.sess.Toggle()
		case "r":
			m.sess.Restart()
			m.history = m.history[:0]
			m.message = ""
			m.draw()
		case "t":
			NextTheme()
		case "s":
			m.saveSnapshot()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.sess.Status() == animate.Running {
			st := m.sess.Step()
			m.history = append(m.history, st.AccumulatedArea)
			if len(m.history) > historyCapacity {
				m.history = m.history[1:]
			}
			m.draw()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) draw() {
	scene, err := m.engine.AnimationScene(m.sess, m.canvas.Frame(canvasPadding))
	if err != nil {
		m.err = err
		return
	}
	m.canvas.Clear()
	scene.Render(shapes{m.canvas})
}

// saveSnapshot writes the current frame as SVG into the working directory.
func (m *Model) saveSnapshot() {
	scene, err := m.engine.AnimationScene(m.sess, m.engine.Config().AnimationFrame())
	if err != nil {
		m.message = "snapshot failed: " + err.Error()
		return
	}
	name := fmt.Sprintf("integralab-%s-%04d.svg", m.sess.ID()[:8], m.sess.State().Steps)
	if err := os.WriteFile(name, []byte(export.SceneToSVG(scene).String()), 0644); err != nil {
		m.message = "snapshot failed: " + err.Error()
		return
	}
	m.message = "saved " + name
}

func statusLabel(s animate.Status) string {
	switch s {
	case animate.Paused:
		return StatusPaused.Render("PAUSED")
	case animate.Finished:
		return StatusFinished.Render("FINISHED")
	}
	return StatusRunning.Render("RUNNING")
}

// View renders the canvas next to the stats panel.
func (m Model) View() string {
	canvasView := canvasStyle.Foreground(CurrentTheme.Curve).Render(m.canvas.String())

	st := m.sess.State()
	a, b := m.sess.Bounds()
	var s strings.Builder
	s.WriteString(headerStyle().Render("∫ "+m.expr+" dx") + "\n")
	s.WriteString(statusLabel(m.sess.Status()) + "\n\n")
	s.WriteString(ProgressBar((st.CurrentX-a)/(b-a), 30) + "\n\n")
	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("A(x)"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}
	s.WriteString(labelStyle.Render("x") + valueStyle.Render(fmt.Sprintf("%.2f", st.CurrentX)) + "\n")
	s.WriteString(labelStyle.Render("A(x)") + valueStyle.Render(fmt.Sprintf("%.3f", st.AccumulatedArea)) + "\n")
	fx := "undefined"
	if st.YOK {
		fx = fmt.Sprintf("%.3f", st.Y)
	}
	s.WriteString(labelStyle.Render("f(x)") + valueStyle.Render(fx) + "\n")
	s.WriteString(labelStyle.Render("Steps") + valueStyle.Render(fmt.Sprintf("%d/%d", st.Steps, m.sess.MaxSteps())) + "\n")
	if st.Skipped > 0 {
		s.WriteString(labelStyle.Render("Skipped") + valueStyle.Render(fmt.Sprintf("%d", st.Skipped)) + "\n")
	}
	if m.sess.Status() == animate.Finished {
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(CurrentTheme.Accent).Bold(true).
			Render(fmt.Sprintf("A(%.1f) = %.3f\nA'(x) = f(x)", b, st.AccumulatedArea)) + "\n")
	}
	if m.err != nil {
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(CurrentTheme.Accent).Render(m.err.Error()) + "\n")
	}
	if m.message != "" {
		s.WriteString("\n" + valueStyle.Render(m.message) + "\n")
	}
	s.WriteString(helpStyle.Render("─────────────────────\nSP:Pause R:Restart Q:Quit\nT:Theme  S:Snapshot ?:Help"))
	statsView := statsStyle.BorderForeground(CurrentTheme.Border).Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume sweep       ║
║  R        - Restart from a           ║
║  T        - Cycle themes             ║
║  S        - Save SVG snapshot        ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// Run shows the model full screen until the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
