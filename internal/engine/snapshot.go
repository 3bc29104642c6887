package engine

import "github.com/vovakirdan/tui-ladders/internal/board"

// PlayerView is a read-only copy of one player's state.
type PlayerView struct {
	Name     string
	Color    string
	Number   int
	Position int
	Bot      bool
}

// Snapshot captures the complete game state for rendering and determinism testing.
type Snapshot struct {
	Phase       Phase
	ActiveIndex int
	Turn        int
	WinnerIndex int // -1 while undecided
	Players     []PlayerView
	Snakes      []board.Link
	Ladders     []board.Link
}

// Snapshot returns a copy of the current state that is safe to keep.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:       g.phase,
		ActiveIndex: g.active,
		Turn:        g.turn,
		WinnerIndex: -1,
		Players:     make([]PlayerView, len(g.players)),
		Snakes:      g.board.Snakes(),
		Ladders:     g.board.Ladders(),
	}

	for i, p := range g.players {
		snap.Players[i] = PlayerView{
			Name:     p.Name,
			Color:    p.Color,
			Number:   p.Number,
			Position: p.Position(),
			Bot:      p.IsBot(),
		}
		if p == g.winner {
			snap.WinnerIndex = i
		}
	}

	return snap
}

// Winner returns the winning player's view, if any.
func (s Snapshot) Winner() (PlayerView, bool) {
	if s.WinnerIndex < 0 || s.WinnerIndex >= len(s.Players) {
		return PlayerView{}, false
	}
	return s.Players[s.WinnerIndex], true
}

// Active returns the active player's view.
func (s Snapshot) Active() PlayerView {
	if s.ActiveIndex < 0 || s.ActiveIndex >= len(s.Players) {
		return PlayerView{}
	}
	return s.Players[s.ActiveIndex]
}
