// Package savegame persists a game to a single flat save slot.
// The record is a JSON document; slots decide where the bytes live.
package savegame

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-ladders/internal/board"
	"github.com/vovakirdan/tui-ladders/internal/engine"
)

var (
	ErrNotFound      = errors.New("savegame: no saved game")
	ErrCorrupt       = errors.New("savegame: record is not valid JSON")
	ErrInvalidSchema = errors.New("savegame: record has an invalid structure")
)

// Record is the persisted form of a game. Field order is the wire order.
type Record struct {
	CurrentIndex int            `json:"current_index"`
	Turn         int            `json:"turn"`
	Players      []PlayerRecord `json:"players"`
	Snakes       [][2]int       `json:"snakes"`
	Ladders      [][2]int       `json:"ladders"`
}

// PlayerRecord is one saved player.
type PlayerRecord struct {
	Name     string `json:"name"`
	Color    string `json:"color"`
	Number   int    `json:"number"`
	Position int    `json:"position"`
	IsBot    bool   `json:"is_bot"`
}

// Save captures the game in its current state.
func Save(g *engine.Game) Record {
	rec := Record{
		CurrentIndex: g.ActiveIndex(),
		Turn:         g.Turn(),
		Players:      make([]PlayerRecord, 0, len(g.Players())),
		Snakes:       pairs(g.Board().Snakes()),
		Ladders:      pairs(g.Board().Ladders()),
	}

	for _, p := range g.Players() {
		rec.Players = append(rec.Players, PlayerRecord{
			Name:     p.Name,
			Color:    p.Color,
			Number:   p.Number,
			Position: p.Position(),
			IsBot:    p.IsBot(),
		})
	}
	return rec
}

func pairs(links []board.Link) [][2]int {
	out := make([][2]int, 0, len(links))
	for _, l := range links {
		out = append(out, [2]int{l.Origin, l.Destination})
	}
	return out
}

// Validate checks ranges that decoding alone cannot.
func (r Record) Validate() error {
	if len(r.Players) == 0 {
		return fmt.Errorf("%w: no players", ErrInvalidSchema)
	}
	if r.CurrentIndex < 0 || r.CurrentIndex >= len(r.Players) {
		return fmt.Errorf("%w: current_index %d out of range", ErrInvalidSchema, r.CurrentIndex)
	}
	if r.Turn < 0 {
		return fmt.Errorf("%w: negative turn", ErrInvalidSchema)
	}
	for i, p := range r.Players {
		if p.Position < 0 || p.Position > board.FinalSquare {
			return fmt.Errorf("%w: player %d position %d out of range", ErrInvalidSchema, i, p.Position)
		}
	}
	return nil
}

// Winner returns the saved player standing on the final square, if any.
func (r Record) Winner() (PlayerRecord, bool) {
	for _, p := range r.Players {
		if p.Position == board.FinalSquare {
			return p, true
		}
	}
	return PlayerRecord{}, false
}
