package tui

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-ladders/internal/board"
	"github.com/vovakirdan/tui-ladders/internal/core"
	"github.com/vovakirdan/tui-ladders/internal/engine"
	"github.com/vovakirdan/tui-ladders/internal/registry"
	"github.com/vovakirdan/tui-ladders/internal/savegame"
	"github.com/vovakirdan/tui-ladders/internal/storage"
)

// ioTimeout bounds save and load calls made from the UI loop.
const ioTimeout = 5 * time.Second

// Deps are the optional collaborators of the game screen.
type Deps struct {
	Saves  *savegame.Manager // nil disables save and load
	Store  *storage.Store    // nil disables result recording
	Logger *log.Logger
}

// animation tracks the token and dice animation for the last turn.
type animation struct {
	active     bool
	player     int
	from       int
	roll       int
	path       []int
	step       int // -1 while the dice are still rolling
	diceFrames int
	held       tea.Msg // tick that arrived while paused
}

// Model is the Bubble Tea model for a running game.
type Model struct {
	game   *engine.Game
	layout registry.Layout
	gameID string
	deps   Deps
	config core.RuntimeConfig
	screen *core.Screen
	keymap *KeyMapper
	help   help.Model
	rng    *rand.Rand // Dice animation faces only

	gen      int // Session generation; stale ticks carry an older value
	anim     animation
	dice     int
	lastTurn string
	message  string
	recorded bool
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g *engine.Game, layout registry.Layout, deps Deps, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}

	return Model{
		game:     g,
		layout:   layout,
		gameID:   storage.NewGameID(),
		deps:     deps,
		config:   cfg,
		screen:   core.NewScreen(viewW, viewH),
		keymap:   NewKeyMapper(),
		help:     help.New(),
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		recorded: g.IsOver(),
	}
}

// Init starts the session if needed and lets a leading bot move.
func (m Model) Init() tea.Cmd {
	if m.game.Phase() == engine.PhaseConfiguring {
		m.game.Start()
	}
	return m.scheduleBot()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case botRollMsg:
		if msg.gen != m.gen || m.anim.active || !m.game.BotToMove() {
			return m, nil
		}
		return m.roll()

	case diceFrameMsg:
		if msg.gen != m.gen || !m.anim.active {
			return m, nil
		}
		if m.game.Phase() == engine.PhasePaused {
			m.anim.held = msg
			return m, nil
		}
		return m.advanceDice()

	case stepMsg:
		if msg.gen != m.gen || !m.anim.active {
			return m, nil
		}
		if m.game.Phase() == engine.PhasePaused {
			m.anim.held = msg
			return m, nil
		}
		return m.advanceStep()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keymap.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionRoll:
		if m.anim.active || m.game.Phase() != engine.PhaseWaitingRoll {
			return m, nil
		}
		if m.game.ActivePlayer().IsBot() {
			m.message = "Waiting for the bot to roll"
			return m, nil
		}
		return m.roll()

	case core.ActionPause:
		if !m.game.TogglePause() {
			return m, nil
		}
		if m.game.Phase() == engine.PhasePaused {
			m.message = "Paused"
			return m, nil
		}
		m.message = ""
		if m.anim.active {
			return m, m.releaseHeld()
		}
		return m, m.scheduleBot()

	case core.ActionSave:
		return m.save()

	case core.ActionLoad:
		return m.load()

	case core.ActionNewGame:
		m.game.Start()
		m.resetSession()
		m.gameID = storage.NewGameID()
		m.recorded = false
		m.message = "New game"
		m.deps.Logger.Info("new game", "game_id", m.gameID, "layout", m.layout.ID)
		return m, m.scheduleBot()

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// roll resolves one turn in the engine, then animates it.
// Engine state is final before any animation is scheduled.
func (m Model) roll() (tea.Model, tea.Cmd) {
	p := m.game.ActivePlayer()
	res, ok := m.game.TakeTurn()
	if !ok {
		return m, nil
	}

	m.lastTurn = describeTurn(p.Name, res)
	m.message = ""
	if res.Won {
		m.recordResult()
	}

	m.anim = animation{
		active:     true,
		player:     res.PlayerIndex,
		from:       res.From,
		roll:       res.Roll,
		path:       stepPath(res),
		step:       -1,
		diceFrames: m.config.DiceFrames,
	}
	m.dice = res.Roll

	if m.anim.diceFrames > 0 {
		m.dice = m.randomFace()
		return m, after(m.config.DiceFrame, diceFrameMsg{gen: m.gen})
	}
	return m.advanceStep()
}

func (m Model) advanceDice() (tea.Model, tea.Cmd) {
	m.anim.diceFrames--
	if m.anim.diceFrames > 0 {
		m.dice = m.randomFace()
		return m, after(m.config.DiceFrame, diceFrameMsg{gen: m.gen})
	}

	m.dice = m.anim.roll
	return m, after(m.config.StepDelay, stepMsg{gen: m.gen})
}

func (m Model) advanceStep() (tea.Model, tea.Cmd) {
	m.anim.step++
	if m.anim.step >= len(m.anim.path)-1 || m.config.StepDelay <= 0 {
		m.anim = animation{}
		if m.game.IsOver() {
			if w := m.game.Winner(); w != nil {
				m.message = fmt.Sprintf("%s wins in %d turns! Press n for a new game", w.Name, m.game.Turn())
			}
			return m, nil
		}
		return m, m.scheduleBot()
	}
	return m, after(m.config.StepDelay, stepMsg{gen: m.gen})
}

// releaseHeld redelivers the animation tick parked during a pause.
func (m *Model) releaseHeld() tea.Cmd {
	held := m.anim.held
	if held == nil {
		return nil
	}
	m.anim.held = nil
	return func() tea.Msg { return held }
}

func (m Model) randomFace() int {
	return m.rng.Intn(m.game.Dice().Sides()) + 1
}

// scheduleBot returns a delayed roll when a bot is due to move.
func (m Model) scheduleBot() tea.Cmd {
	if !m.game.BotToMove() {
		return nil
	}
	return after(m.config.BotDelay, botRollMsg{gen: m.gen})
}

// resetSession invalidates pending ticks and clears animation state.
func (m *Model) resetSession() {
	m.gen++
	m.anim = animation{}
	m.dice = 0
	m.lastTurn = ""
}

func (m Model) save() (tea.Model, tea.Cmd) {
	if m.deps.Saves == nil {
		m.message = "Saving is not configured"
		return m, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), ioTimeout)
	defer cancel()

	if err := m.deps.Saves.SaveGame(ctx, m.game); err != nil {
		m.message = "Save failed: " + err.Error()
		return m, nil
	}
	m.message = "Game saved to " + m.deps.Saves.Slot().Location()
	return m, nil
}

// load replaces the current game with the saved one. On failure the
// current game is kept and only the message changes.
func (m Model) load() (tea.Model, tea.Cmd) {
	if m.deps.Saves == nil {
		m.message = "Loading is not configured"
		return m, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), ioTimeout)
	defer cancel()

	g, err := m.deps.Saves.LoadGame(ctx, board.Empty(), m.game.Dice(), engine.WithLogger(m.deps.Logger))
	if err != nil {
		m.message = "Load failed: " + err.Error()
		return m, nil
	}

	m.game = g
	m.resetSession()
	m.gameID = storage.NewGameID()
	m.recorded = g.IsOver()
	m.message = "Game loaded"
	return m, m.scheduleBot()
}

// recordResult stores a finished game once. Failures are logged only.
func (m *Model) recordResult() {
	if m.recorded || m.deps.Store == nil {
		return
	}
	m.recorded = true

	w := m.game.Winner()
	if w == nil {
		return
	}

	bots := 0
	for _, p := range m.game.Players() {
		if p.IsBot() {
			bots++
		}
	}

	_, err := m.deps.Store.SaveResult(storage.ResultEntry{
		GameID:      m.gameID,
		Layout:      m.layout.ID,
		Winner:      w.Name,
		WinnerColor: w.Color,
		WinnerBot:   w.IsBot(),
		Turns:       m.game.Turn(),
		Players:     len(m.game.Players()),
		Bots:        bots,
	})
	if err != nil {
		m.deps.Logger.Warn("cannot record result", "game_id", m.gameID, "err", err)
		return
	}
	m.deps.Logger.Info("game finished", "game_id", m.gameID, "winner", w.Name, "turns", m.game.Turn())
}

// positions returns the squares to draw, following the animation.
func (m Model) positions() []int {
	players := m.game.Players()
	out := make([]int, len(players))
	for i, p := range players {
		out[i] = p.Position()
	}
	if m.anim.active && m.anim.player < len(out) {
		switch {
		case m.anim.step < 0:
			out[m.anim.player] = m.anim.from
		case m.anim.step < len(m.anim.path):
			out[m.anim.player] = m.anim.path[m.anim.step]
		}
	}
	return out
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawBoard(m.screen, boardFrame{
		snap:      m.game.Snapshot(),
		positions: m.positions(),
		dice:      m.dice,
		rolling:   m.anim.active && m.anim.diceFrames > 0,
		lastTurn:  m.lastTurn,
		message:   m.message,
	})

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
		Render("SNAKES & LADDERS · " + m.layout.Title)
	helpView := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).
		Render(m.help.View(m.keymap.Keys()))

	return title + "\n" + RenderScreen(m.screen) + "\n" + helpView
}

// Game returns the game currently on screen.
func (m Model) Game() *engine.Game {
	return m.game
}

// Run starts the Bubble Tea program with the given game.
func Run(g *engine.Game, layout registry.Layout, deps Deps, cfg core.RuntimeConfig) error {
	model := NewModel(g, layout, deps, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
