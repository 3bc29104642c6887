// Package board models the 10x10 Snakes and Ladders grid and its shortcut links.
// It has no knowledge of players, turns or rendering.
package board

import (
	"errors"
	"fmt"
	"sort"
)

const (
	Size        = 10          // Squares per row and column
	FinalSquare = Size * Size // Winning square
)

// ErrInvalidLink is returned when a link endpoint is off the board or points the wrong way.
var ErrInvalidLink = errors.New("invalid link")

// Kind distinguishes snakes from ladders.
type Kind int

const (
	KindSnake Kind = iota
	KindLadder
)

// String returns a human-readable name for the link kind.
func (k Kind) String() string {
	switch k {
	case KindSnake:
		return "snake"
	case KindLadder:
		return "ladder"
	default:
		return "unknown"
	}
}

// Link is a single shortcut between two squares.
type Link struct {
	Origin      int
	Destination int
	Kind        Kind
}

// String returns the link in "snake 34->1" form.
func (l Link) String() string {
	return fmt.Sprintf("%s %d->%d", l.Kind, l.Origin, l.Destination)
}

// ConfigError reports a rejected link.
type ConfigError struct {
	Link   Link
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("board: %s: %s", e.Link, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidLink).
func (e *ConfigError) Unwrap() error {
	return ErrInvalidLink
}

// Board owns the snake and ladder links.
// Snakes are consulted before ladders; within a kind the earliest-added link wins.
type Board struct {
	snakes  []Link
	ladders []Link
}

// New builds a board from origin->destination maps.
// Links are added in ascending origin order so the result does not depend on map iteration.
func New(snakes, ladders map[int]int) (*Board, error) {
	b := &Board{}

	for _, origin := range sortedKeys(snakes) {
		if err := b.AddLink(origin, snakes[origin], KindSnake); err != nil {
			return nil, err
		}
	}
	for _, origin := range sortedKeys(ladders) {
		if err := b.AddLink(origin, ladders[origin], KindLadder); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Empty returns a board with no links.
func Empty() *Board {
	return &Board{}
}

// AddLink registers a link. Overlapping origins are not rejected: the link
// already registered for an origin keeps precedence.
func (b *Board) AddLink(origin, destination int, kind Kind) error {
	l := Link{Origin: origin, Destination: destination, Kind: kind}
	if err := validate(l); err != nil {
		return err
	}

	switch kind {
	case KindSnake:
		b.snakes = append(b.snakes, l)
	case KindLadder:
		b.ladders = append(b.ladders, l)
	}
	return nil
}

func validate(l Link) error {
	if !OnBoard(l.Origin) || !OnBoard(l.Destination) {
		return &ConfigError{Link: l, Reason: fmt.Sprintf("endpoints must be within [1,%d]", FinalSquare)}
	}
	if l.Origin == l.Destination {
		return &ConfigError{Link: l, Reason: "origin equals destination"}
	}

	switch l.Kind {
	case KindSnake:
		if l.Destination > l.Origin {
			return &ConfigError{Link: l, Reason: "snake must lead down"}
		}
	case KindLadder:
		if l.Destination < l.Origin {
			return &ConfigError{Link: l, Reason: "ladder must lead up"}
		}
	default:
		return &ConfigError{Link: l, Reason: "unknown kind"}
	}
	return nil
}

// ResolveLanding returns the square a token comes to rest on after landing on
// square, and the link it travelled (nil if none). Only one hop is taken: the
// destination is never resolved again, even if it is itself an origin.
func (b *Board) ResolveLanding(square int) (int, *Link) {
	if l, ok := b.LinkAt(square); ok {
		return l.Destination, &l
	}
	return square, nil
}

// Destination is ResolveLanding without the link.
func (b *Board) Destination(square int) int {
	dst, _ := b.ResolveLanding(square)
	return dst
}

// LinkAt returns the link that starts at square, honouring precedence.
func (b *Board) LinkAt(square int) (Link, bool) {
	for _, s := range b.snakes {
		if s.Origin == square {
			return s, true
		}
	}
	for _, l := range b.ladders {
		if l.Origin == square {
			return l, true
		}
	}
	return Link{}, false
}

// Clear removes every link.
func (b *Board) Clear() {
	b.snakes = nil
	b.ladders = nil
}

// Snakes returns a copy of the snake links in insertion order.
func (b *Board) Snakes() []Link {
	return append([]Link(nil), b.snakes...)
}

// Ladders returns a copy of the ladder links in insertion order.
func (b *Board) Ladders() []Link {
	return append([]Link(nil), b.ladders...)
}

// Links returns snakes followed by ladders.
func (b *Board) Links() []Link {
	out := make([]Link, 0, len(b.snakes)+len(b.ladders))
	out = append(out, b.snakes...)
	out = append(out, b.ladders...)
	return out
}

// OnBoard reports whether square is a playable square (1..100).
func OnBoard(square int) bool {
	return square >= 1 && square <= FinalSquare
}

func sortedKeys(m map[int]int) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
