// Package dice provides the random roller used by the turn engine.
package dice

import (
	"math/rand"
	"time"
)

// DefaultSides is the face count of a standard die.
const DefaultSides = 6

// Roller produces dice values. The engine only depends on this interface,
// which lets tests and replays script the rolls.
type Roller interface {
	// Roll returns a value in [1, Sides()].
	Roll() int

	// Sides returns the number of faces.
	Sides() int
}

// Dice is a uniform roller over a fixed number of faces.
type Dice struct {
	sides int
	rng   *rand.Rand
}

// New creates a die with the given number of faces.
// sides < 1 falls back to DefaultSides; a nil rng is seeded from the clock.
func New(sides int, rng *rand.Rand) *Dice {
	if sides < 1 {
		sides = DefaultSides
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // game dice, not crypto
	}
	return &Dice{sides: sides, rng: rng}
}

// NewSeeded creates a die with a deterministic source. Seed 0 uses the clock.
func NewSeeded(sides int, seed int64) *Dice {
	if seed == 0 {
		return New(sides, nil)
	}
	return New(sides, rand.New(rand.NewSource(seed))) //nolint:gosec // game dice, not crypto
}

// Default returns a clock-seeded six-sided die.
func Default() *Dice {
	return New(DefaultSides, nil)
}

// Roll returns a uniformly distributed value in [1, sides].
func (d *Dice) Roll() int {
	return d.rng.Intn(d.sides) + 1
}

// Sides returns the number of faces.
func (d *Dice) Sides() int {
	return d.sides
}

// Scripted replays a fixed sequence of rolls, cycling when exhausted.
type Scripted struct {
	rolls []int
	next  int
	sides int
}

// NewScripted creates a roller that returns rolls in order.
// Sides reports the largest scripted value (at least DefaultSides).
func NewScripted(rolls ...int) *Scripted {
	sides := DefaultSides
	for _, r := range rolls {
		if r > sides {
			sides = r
		}
	}
	return &Scripted{rolls: append([]int(nil), rolls...), sides: sides}
}

// Roll returns the next scripted value. An empty script always rolls 1.
func (s *Scripted) Roll() int {
	if len(s.rolls) == 0 {
		return 1
	}
	r := s.rolls[s.next%len(s.rolls)]
	s.next++
	return r
}

// Sides returns the reported face count.
func (s *Scripted) Sides() int {
	return s.sides
}
