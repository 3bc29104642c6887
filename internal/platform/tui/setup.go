package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-ladders/internal/core"
	"github.com/vovakirdan/tui-ladders/internal/player"
	"github.com/vovakirdan/tui-ladders/internal/registry"
)

// Setup form rows after the name inputs.
const (
	rowBots = player.MaxPlayers + iota
	rowLayout
	rowStart
	setupRows
)

// SetupResult is what the setup screen produced.
type SetupResult struct {
	Roster player.RosterOptions
	Layout string
}

// SetupModel collects player names, bot count and layout before a game.
type SetupModel struct {
	inputs    []textinput.Model
	bots      int
	layouts   []registry.LayoutInfo
	layoutIdx int
	focus     int
	keymap    *KeyMapper
	err       string
	done      bool
	cancelled bool
}

// NewSetupModel creates the form with the given layout preselected.
func NewSetupModel(defaultLayout string) SetupModel {
	inputs := make([]textinput.Model, player.MaxPlayers)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = fmt.Sprintf("Player %d", i+1)
		ti.CharLimit = 16
		ti.Width = 18
		ti.Prompt = fmt.Sprintf("%d › ", i+1)
		inputs[i] = ti
	}
	inputs[0].SetValue("Player 1")
	inputs[0].Focus()

	m := SetupModel{
		inputs:  inputs,
		layouts: registry.List(),
		keymap:  NewKeyMapper(),
	}
	for i, l := range m.layouts {
		if l.ID == defaultLayout {
			m.layoutIdx = i
		}
	}
	return m
}

// Init starts the cursor blinking.
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the setup form.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch m.keymap.MapKeyToMenuAction(msg) {
		case core.ActionQuit, core.ActionBack:
			m.cancelled = true
			return m, tea.Quit
		case core.ActionUp:
			return m, m.moveFocus(-1)
		case core.ActionDown:
			return m, m.moveFocus(1)
		case core.ActionConfirm:
			if m.focus < rowStart {
				return m, m.moveFocus(1)
			}
			if err := m.validate(); err != nil {
				m.err = err.Error()
				return m, nil
			}
			m.done = true
			return m, tea.Quit
		}

		switch msg.String() {
		case "left", "right":
			delta := 1
			if msg.String() == "left" {
				delta = -1
			}
			switch m.focus {
			case rowBots:
				m.bots = core.Clamp(m.bots+delta, 0, player.MaxPlayers)
				m.err = ""
				return m, nil
			case rowLayout:
				if n := len(m.layouts); n > 0 {
					m.layoutIdx = (m.layoutIdx + delta + n) % n
				}
				return m, nil
			}
		}
	}

	// Pass other messages to the focused input
	if m.focus < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		m.err = ""
		return m, cmd
	}
	return m, nil
}

// moveFocus cycles through the form rows.
func (m *SetupModel) moveFocus(delta int) tea.Cmd {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = (m.focus + delta + setupRows) % setupRows
	if m.focus < len(m.inputs) {
		return m.inputs[m.focus].Focus()
	}
	return nil
}

// Result returns the roster options and layout chosen so far.
func (m SetupModel) Result() SetupResult {
	var humans []string
	for _, in := range m.inputs {
		if name := strings.TrimSpace(in.Value()); name != "" {
			humans = append(humans, name)
		}
	}

	layout := ""
	if len(m.layouts) > 0 {
		layout = m.layouts[m.layoutIdx].ID
	}

	return SetupResult{
		Roster: player.RosterOptions{Humans: humans, Bots: m.bots},
		Layout: layout,
	}
}

func (m SetupModel) validate() error {
	_, err := player.Roster(m.Result().Roster)
	return err
}

// View renders the setup form.
func (m SetupModel) View() string {
	if m.done || m.cancelled {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	focusStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("NEW GAME"))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Players (leave blank to skip)"))
	b.WriteString("\n")
	for _, in := range m.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	row := func(idx int, text string) {
		cursor := "  "
		style := lipgloss.NewStyle()
		if m.focus == idx {
			cursor = "> "
			style = focusStyle
		}
		b.WriteString(style.Render(cursor + text))
		b.WriteString("\n")
	}

	row(rowBots, fmt.Sprintf("Bots:   ◀ %d ▶", m.bots))
	layout := "(none)"
	if len(m.layouts) > 0 {
		layout = m.layouts[m.layoutIdx].Title
	}
	row(rowLayout, fmt.Sprintf("Board:  ◀ %s ▶", layout))
	row(rowStart, "[ Start ]")

	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(m.err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab/↓ next • shift+tab/↑ prev • ←/→ change • enter confirm • esc cancel"))
	return b.String()
}

// RunSetup shows the setup form. ok is false if the user cancelled.
func RunSetup(defaultLayout string) (result SetupResult, ok bool, err error) {
	p := tea.NewProgram(NewSetupModel(defaultLayout), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return SetupResult{}, false, err
	}

	m, isSetup := finalModel.(SetupModel)
	if !isSetup || !m.done {
		return SetupResult{}, false, nil
	}
	return m.Result(), true, nil
}
