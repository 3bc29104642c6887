package savegame

import (
	"encoding/json"
	"fmt"

	"github.com/vovakirdan/tui-ladders/internal/board"
	"github.com/vovakirdan/tui-ladders/internal/dice"
	"github.com/vovakirdan/tui-ladders/internal/engine"
	"github.com/vovakirdan/tui-ladders/internal/player"
)

const indent = "    "

// wireRecord mirrors Record with pointers so missing fields can be told
// apart from zero values.
type wireRecord struct {
	CurrentIndex *int          `json:"current_index"`
	Turn         *int          `json:"turn"`
	Players      []*wirePlayer `json:"players"`
	Snakes       [][]int       `json:"snakes"`
	Ladders      [][]int       `json:"ladders"`
}

type wirePlayer struct {
	Name     *string `json:"name"`
	Color    *string `json:"color"`
	Number   *int    `json:"number"`
	Position *int    `json:"position"`
	IsBot    *bool   `json:"is_bot"`
}

// Encode renders a record as indented JSON.
func Encode(r Record) ([]byte, error) {
	if r.Players == nil {
		r.Players = []PlayerRecord{}
	}
	if r.Snakes == nil {
		r.Snakes = [][2]int{}
	}
	if r.Ladders == nil {
		r.Ladders = [][2]int{}
	}

	data, err := json.MarshalIndent(r, "", indent)
	if err != nil {
		return nil, fmt.Errorf("savegame: cannot encode: %w", err)
	}
	return data, nil
}

// Decode parses and validates a record.
// Missing current_index, turn, snakes or ladders default to empty; a missing
// is_bot defaults to false. Every other player field is required.
func Decode(data []byte) (Record, error) {
	if !json.Valid(data) {
		return Record{}, ErrCorrupt
	}

	var w wireRecord
	if err := json.Unmarshal(data, &w); err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}
	if w.Players == nil {
		return Record{}, fmt.Errorf("%w: missing players", ErrInvalidSchema)
	}

	var rec Record
	if w.CurrentIndex != nil {
		rec.CurrentIndex = *w.CurrentIndex
	}
	if w.Turn != nil {
		rec.Turn = *w.Turn
	}

	rec.Players = make([]PlayerRecord, 0, len(w.Players))
	for i, wp := range w.Players {
		if wp == nil || wp.Name == nil || wp.Color == nil || wp.Number == nil || wp.Position == nil {
			return Record{}, fmt.Errorf("%w: player %d is missing a required field", ErrInvalidSchema, i)
		}
		p := PlayerRecord{
			Name:     *wp.Name,
			Color:    *wp.Color,
			Number:   *wp.Number,
			Position: *wp.Position,
		}
		if wp.IsBot != nil {
			p.IsBot = *wp.IsBot
		}
		rec.Players = append(rec.Players, p)
	}

	var err error
	if rec.Snakes, err = toPairs("snakes", w.Snakes); err != nil {
		return Record{}, err
	}
	if rec.Ladders, err = toPairs("ladders", w.Ladders); err != nil {
		return Record{}, err
	}

	if err := rec.Validate(); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func toPairs(field string, in [][]int) ([][2]int, error) {
	out := make([][2]int, 0, len(in))
	for i, p := range in {
		if len(p) != 2 {
			return nil, fmt.Errorf("%w: %s[%d] has %d values", ErrInvalidSchema, field, i, len(p))
		}
		out = append(out, [2]int{p[0], p[1]})
	}
	return out, nil
}

// Load rebuilds a game from a record onto b, using d for future rolls.
// b is cleared and receives exactly the record's links, snakes first.
// On error b and every other caller-visible value are left unchanged.
func Load(rec Record, b *board.Board, d dice.Roller, opts ...engine.Option) (*engine.Game, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	staged := board.Empty()
	for _, s := range rec.Snakes {
		if err := staged.AddLink(s[0], s[1], board.KindSnake); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
		}
	}
	for _, l := range rec.Ladders {
		if err := staged.AddLink(l[0], l[1], board.KindLadder); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
		}
	}

	players := make([]*player.Player, 0, len(rec.Players))
	for _, pr := range rec.Players {
		p := player.New(pr.Name, pr.Color, pr.Number, pr.IsBot)
		p.MoveTo(pr.Position)
		players = append(players, p)
	}

	if b == nil {
		b = board.Empty()
	}
	g, err := engine.New(b, players, d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}

	// Commit: nothing below can fail on a validated record
	b.Clear()
	for _, l := range staged.Links() {
		_ = b.AddLink(l.Origin, l.Destination, l.Kind)
	}
	if err := g.Restore(rec.CurrentIndex, rec.Turn); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}
	return g, nil
}
