// Package player holds the mutable per-player state of a Snakes and Ladders session.
package player

import (
	"fmt"

	"github.com/vovakirdan/tui-ladders/internal/board"
)

// Control tells the surrounding controller who decides when this player rolls.
type Control int

const (
	Human Control = iota
	Bot
)

// String returns a human-readable name for the control mode.
func (c Control) String() string {
	switch c {
	case Human:
		return "Human"
	case Bot:
		return "Bot"
	default:
		return "Unknown"
	}
}

// Player is one participant. Position 0 means the token has not entered the board.
type Player struct {
	Name   string
	Color  string // Colour tag, e.g. "red"
	Number int    // 1-based turn-order identity, independent of slice index

	position int
	bot      bool
}

// New creates a player at the start square.
func New(name, color string, number int, bot bool) *Player {
	return &Player{
		Name:   name,
		Color:  color,
		Number: number,
		bot:    bot,
	}
}

// MoveBy advances the token. Overshooting stops on the final square.
func (p *Player) MoveBy(steps int) {
	p.MoveTo(p.position + steps)
}

// MoveTo places the token on square, clamped to [0, board.FinalSquare].
func (p *Player) MoveTo(square int) {
	switch {
	case square < 0:
		p.position = 0
	case square > board.FinalSquare:
		p.position = board.FinalSquare
	default:
		p.position = square
	}
}

// Position returns the current square.
func (p *Player) Position() int {
	return p.position
}

// IsBot reports whether the player is computer-controlled.
func (p *Player) IsBot() bool {
	return p.bot
}

// Control returns Human or Bot.
func (p *Player) Control() Control {
	if p.bot {
		return Bot
	}
	return Human
}

func (p *Player) String() string {
	if p.bot {
		return fmt.Sprintf("Player(%s, pos=%d, Bot)", p.Name, p.position)
	}
	return fmt.Sprintf("Player(%s, pos=%d)", p.Name, p.position)
}
