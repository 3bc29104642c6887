package player

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MinPlayers = 2
	MaxPlayers = 4

	// BotName is used for the computer opponent added to single-human games.
	BotName = "CPU"

	fallbackColor = "gray"
)

// Palette is the colour order handed out to players.
var Palette = []string{"red", "blue", "green", "purple", "orange", "cyan"}

// ErrPlayerCount is returned when a roster is outside [MinPlayers, MaxPlayers].
var ErrPlayerCount = errors.New("player count out of range")

// RosterOptions configures Roster.
type RosterOptions struct {
	Humans []string // Display names, blank entries become "P<n>"
	Bots   int      // Extra bot players to append
}

// Roster builds a turn-ordered player list. Humans get palette colours in order.
// A single human with no bots requested gets one CPU opponent.
func Roster(opts RosterOptions) ([]*Player, error) {
	bots := opts.Bots
	if bots < 0 {
		bots = 0
	}
	if len(opts.Humans) == 1 && bots == 0 {
		bots = 1
	}

	total := len(opts.Humans) + bots
	if total < MinPlayers || total > MaxPlayers {
		return nil, fmt.Errorf("player: %d players requested, want %d-%d: %w", total, MinPlayers, MaxPlayers, ErrPlayerCount)
	}

	players := make([]*Player, 0, total)
	used := make(map[string]bool)

	for i, name := range opts.Humans {
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("P%d", i+1)
		}
		color := Palette[i%len(Palette)]
		used[color] = true
		players = append(players, New(name, color, len(players)+1, false))
	}

	for i := 0; i < bots; i++ {
		name := BotName
		if bots > 1 {
			name = fmt.Sprintf("%s %d", BotName, i+1)
		}
		color := unusedColor(used)
		used[color] = true
		players = append(players, New(name, color, len(players)+1, true))
	}

	return players, nil
}

func unusedColor(used map[string]bool) string {
	for _, c := range Palette {
		if !used[c] {
			return c
		}
	}
	return fallbackColor
}
