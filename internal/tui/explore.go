// Package tui provides an interactive terminal explorer for fluid states:
// pick a substance, then walk the (T, v) plane with the arrow keys while
// the property panel updates live.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/purefluid/internal/phase"
	"github.com/san-kum/purefluid/internal/registry"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

type screen int

const (
	screenMenu screen = iota
	screenExplore
)

type model struct {
	screen screen
	cursor int
	names  []string
	reg    *registry.Registry

	ph    *phase.Phase
	t     float64 // K
	v     float64 // m^3/mol
	tStep float64
	err   error

	width  int
	height int
}

func newModel() model {
	reg := registry.New()
	return model{
		screen: screenMenu,
		names:  reg.List(),
		reg:    reg,
		tStep:  5.0,
		width:  80,
		height: 24,
	}
}

// Run starts the explorer and blocks until the user quits.
func Run() error {
	_, err := tea.NewProgram(newModel(), tea.WithAltScreen()).Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.screen == screenMenu {
		return m.menuKey(msg)
	}
	return m.exploreKey(msg)
}

func (m model) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case "enter", " ":
		name := m.names[m.cursor]
		ph, err := m.reg.Phase(name)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.ph = ph
		// Start midway between the floor and critical temperatures, at
		// a dilute vapor volume.
		m.t = 0.5 * (ph.MinTemp() + ph.CritTemperature())
		m.v = 0.01
		m.screen = screenExplore
		m.resolve()
	}
	return m, nil
}

func (m *model) resolve() {
	m.err = m.ph.SetTV(m.t, m.v)
}

func (m model) exploreKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "b":
		m.screen = screenMenu
		return m, nil
	case "left", "h":
		if m.t-m.tStep > m.ph.MinTemp() {
			m.t -= m.tStep
			m.resolve()
		}
	case "right", "l":
		if m.t+m.tStep < m.ph.MaxTemp() {
			m.t += m.tStep
			m.resolve()
		}
	case "up", "k":
		m.v *= 1.25
		m.resolve()
	case "down", "j":
		m.v /= 1.25
		m.resolve()
	case "+", "=":
		m.tStep *= 2
	case "-":
		if m.tStep > 0.5 {
			m.tStep /= 2
		}
	case "c":
		// Jump to the critical point.
		m.t = m.ph.CritTemperature()
		m.v = 1.0 / m.ph.CritDensity()
		m.resolve()
	}
	return m, nil
}

func (m model) View() string {
	if m.screen == screenMenu {
		return m.menuView()
	}
	return m.exploreView()
}

func (m model) menuView() string {
	var sb strings.Builder
	sb.WriteString(cyan.Render("purefluid explorer") + "\n\n")
	sb.WriteString(dim.Render("select a substance") + "\n\n")
	for i, name := range m.names {
		cursor := "  "
		style := white
		if i == m.cursor {
			cursor = green.Render("> ")
			style = green
		}
		sb.WriteString(cursor + style.Render(name) + "\n")
	}
	sb.WriteString("\n" + dim.Render("enter select · q quit"))
	return sb.String()
}

func (m model) exploreView() string {
	var sb strings.Builder
	sb.WriteString(cyan.Render(fmt.Sprintf("%s  ", m.ph.Name())))
	sb.WriteString(dim.Render(fmt.Sprintf("Tc=%.2f K  Pc=%.4g Pa", m.ph.CritTemperature(), m.ph.CritPressure())))
	sb.WriteString("\n\n")
	sb.WriteString(white.Render(fmt.Sprintf("T = %.2f K   v = %.4g m^3/mol   (step %.1f K)", m.t, m.v, m.tStep)))
	sb.WriteString("\n\n")

	if m.err != nil {
		sb.WriteString(yellow.Render("error: "+m.err.Error()) + "\n")
	} else if report, err := m.ph.Report(); err == nil {
		sb.WriteString(report)
	}

	sb.WriteString("\n" + dim.Render("←/→ temperature · ↑/↓ volume · +/- step · c critical point · b back · q quit"))
	return sb.String()
}
