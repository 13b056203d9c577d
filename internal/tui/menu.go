package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/integralab/internal/config"
	"github.com/san-kum/integralab/internal/engine"
)

const presetGroup = "animation"

const (
	stateMenu = iota
	stateLive
)

// Menu lists the animation presets and runs the chosen one.
type Menu struct {
	engine  *engine.Engine
	state   int
	cursor  int
	presets []string
	err     error
	live    Model
}

func NewMenu(e *engine.Engine) Menu {
	return Menu{engine: e, presets: config.ListPresets(presetGroup)}
}

func (m Menu) Init() tea.Cmd { return nil }

func (m Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == stateLive {
		next, cmd := m.live.Update(msg)
		m.live = next.(Model)
		return m, cmd
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case "enter", " ":
		return m.start()
	}
	return m, nil
}

func (m Menu) start() (Menu, tea.Cmd) {
	if len(m.presets) == 0 {
		return m, nil
	}
	p := config.GetPreset(presetGroup, m.presets[m.cursor])
	cfg := m.engine.Config()
	cfg.ApplyPreset(p)
	sess, err := m.engine.NewAnimationSession(cfg.Animation.Expression, cfg.Animation.A, cfg.Animation.B, cfg.Animation.Step)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.live = NewModel(m.engine, sess, cfg.Animation.Expression, cfg.Animation.FPS)
	m.state = stateLive
	return m, m.live.Init()
}

func (m Menu) View() string {
	if m.state == stateLive {
		return m.live.View()
	}
	var b strings.Builder
	h, sub := lipgloss.NewStyle().Foreground(CurrentTheme.Curve).Bold(true), lipgloss.NewStyle().Foreground(CurrentTheme.Muted)
	b.WriteString("\n\n    " + h.Render("INTEGRALAB") + "\n    " + sub.Render("area accumulation") + "\n    " + sub.Render("─────────────────────────") + "\n\n")
	for i, name := range m.presets {
		p := config.GetPreset(presetGroup, name)
		desc := fmt.Sprintf("%s on [%.2f, %.2f]", p.Expression, p.Lower, p.Upper)
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", lipgloss.NewStyle().Foreground(CurrentTheme.Accent).Bold(true).Render("▸"), lipgloss.NewStyle().Foreground(CurrentTheme.Text).Bold(true).Render(fmt.Sprintf("%-12s", name)), lipgloss.NewStyle().Foreground(CurrentTheme.Curve).Render(desc)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", lipgloss.NewStyle().Foreground(CurrentTheme.Muted).Render(fmt.Sprintf("  %-12s", name)), lipgloss.NewStyle().Foreground(CurrentTheme.Border).Render(desc)))
		}
	}
	if m.err != nil {
		b.WriteString("\n    " + lipgloss.NewStyle().Foreground(CurrentTheme.Accent).Render(m.err.Error()) + "\n")
	}
	key, text := lipgloss.NewStyle().Foreground(CurrentTheme.Curve).Bold(true), lipgloss.NewStyle().Foreground(CurrentTheme.Muted)
	b.WriteString("\n    " + key.Render("j/k") + text.Render(" navigate  ") + key.Render("enter") + text.Render(" select  ") + key.Render("q") + text.Render(" quit") + "\n")
	return b.String()
}

// RunMenu shows the preset menu full screen.
func RunMenu(e *engine.Engine) error {
	_, err := tea.NewProgram(NewMenu(e), tea.WithAltScreen()).Run()
	return err
}
