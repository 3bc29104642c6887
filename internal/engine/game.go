// Package engine implements the Snakes and Ladders turn state machine.
// It is synchronous and owned by a single controller; it performs no I/O
// and has no failure paths once constructed.
package engine

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-ladders/internal/board"
	"github.com/vovakirdan/tui-ladders/internal/dice"
	"github.com/vovakirdan/tui-ladders/internal/player"
)

var (
	ErrNoPlayers   = errors.New("engine: at least one player is required")
	ErrNilBoard    = errors.New("engine: board is required")
	ErrActiveIndex = errors.New("engine: active index out of range")
)

// TurnResult describes one resolved turn so a renderer can animate it.
type TurnResult struct {
	PlayerIndex int
	Roll        int
	From        int         // Square before the roll
	Landed      int         // Square after moving, before any link
	Final       int         // Square after the link (equals Landed if none)
	Link        *board.Link // Link travelled, nil if none
	Won         bool
	NewCycle    bool // Turn counter advanced on this roll
}

// Game is the aggregate: players in turn order, board, dice and phase.
type Game struct {
	board   *board.Board
	dice    dice.Roller
	players []*player.Player

	active int
	turn   int
	phase  Phase
	winner *player.Player

	resumePhase Phase // Phase to return to from Paused
	logger      *log.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for per-turn debug output.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates a game in the Configuring phase. A nil roller uses a six-sided die.
func New(b *board.Board, players []*player.Player, d dice.Roller, opts ...Option) (*Game, error) {
	if b == nil {
		return nil, ErrNilBoard
	}
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}
	if d == nil {
		d = dice.Default()
	}

	g := &Game{
		board:   b,
		dice:    d,
		players: players,
		phase:   PhaseConfiguring,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Start begins a new session: every token back to 0, first player to move.
// This is the only way out of GameOver.
func (g *Game) Start() {
	for _, p := range g.players {
		p.MoveTo(0)
	}
	g.active = 0
	g.turn = 0
	g.winner = nil
	g.phase = PhaseWaitingRoll
	g.resumePhase = PhaseWaitingRoll

	g.logger.Debug("session started", "players", len(g.players))
}

// TakeTurn rolls for the active player and resolves the whole turn.
// It only acts in WaitingRoll; otherwise it returns ok=false and changes nothing.
func (g *Game) TakeTurn() (TurnResult, bool) {
	if g.phase != PhaseWaitingRoll {
		return TurnResult{}, false
	}

	p := g.players[g.active]
	res := TurnResult{PlayerIndex: g.active, From: p.Position()}

	g.phase = PhaseRollingDice
	if g.active == 0 {
		g.turn++
		res.NewCycle = true
	}
	res.Roll = g.dice.Roll()

	g.phase = PhaseMoving
	p.MoveBy(res.Roll)
	res.Landed = p.Position()

	g.phase = PhaseResolvingLink
	final, link := g.board.ResolveLanding(res.Landed)
	if final != res.Landed {
		p.MoveTo(final)
	}
	res.Final = p.Position()
	res.Link = link

	g.phase = PhaseCheckingWin
	if p.Position() == board.FinalSquare {
		g.phase = PhaseGameOver
		g.winner = p
		res.Won = true
	} else {
		g.active = (g.active + 1) % len(g.players)
		g.phase = PhaseWaitingRoll
	}

	g.logger.Debug("turn resolved",
		"player", p.Name,
		"roll", res.Roll,
		"from", res.From,
		"landed", res.Landed,
		"final", res.Final,
		"turn", g.turn,
		"won", res.Won,
	)

	return res, true
}

// Pause suspends an active session. No-op otherwise.
func (g *Game) Pause() bool {
	if !g.phase.Active() {
		return false
	}
	g.resumePhase = g.phase
	g.phase = PhasePaused
	return true
}

// Resume returns to the phase that was paused. No-op when not paused.
func (g *Game) Resume() bool {
	if g.phase != PhasePaused {
		return false
	}
	g.phase = g.resumePhase
	return true
}

// TogglePause pauses or resumes. It reports false when the phase allows
// neither, as after the game is over.
func (g *Game) TogglePause() bool {
	if g.phase == PhasePaused {
		return g.Resume()
	}
	return g.Pause()
}

// Restore reinstates a loaded session. Players are already positioned.
// If someone already stands on the final square the game is over and they won.
func (g *Game) Restore(activeIndex, turn int) error {
	if activeIndex < 0 || activeIndex >= len(g.players) {
		return ErrActiveIndex
	}

	g.active = activeIndex
	g.turn = turn
	g.winner = nil
	g.phase = PhaseWaitingRoll
	g.resumePhase = PhaseWaitingRoll

	for _, p := range g.players {
		if p.Position() == board.FinalSquare {
			g.winner = p
			g.phase = PhaseGameOver
			break
		}
	}
	return nil
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// ActivePlayer returns the player whose turn it is.
func (g *Game) ActivePlayer() *player.Player {
	return g.players[g.active]
}

// ActiveIndex returns the index of the active player.
func (g *Game) ActiveIndex() int {
	return g.active
}

// Turn returns the number of turn cycles started so far.
func (g *Game) Turn() int {
	return g.turn
}

// Winner returns the winner, or nil while the game is undecided.
func (g *Game) Winner() *player.Player {
	return g.winner
}

// IsOver reports whether the game has a winner.
func (g *Game) IsOver() bool {
	return g.phase == PhaseGameOver
}

// BotToMove reports whether the controller should roll on a bot's behalf.
func (g *Game) BotToMove() bool {
	return g.phase == PhaseWaitingRoll && g.players[g.active].IsBot()
}

// Players returns the players in turn order. The slice is shared with the game.
func (g *Game) Players() []*player.Player {
	return g.players
}

// Board returns the game board.
func (g *Game) Board() *board.Board {
	return g.board
}

// Dice returns the roller.
func (g *Game) Dice() dice.Roller {
	return g.dice
}
