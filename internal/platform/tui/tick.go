// Package tui provides the Bubble Tea integration for the ladders game.
// It handles the terminal UI loop, input mapping, animation and bot pacing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Deferred messages carry the session generation that scheduled them.
// A new game or a load bumps the generation so stale ticks are dropped.

// botRollMsg asks the model to roll for the active bot.
type botRollMsg struct{ gen int }

// diceFrameMsg advances the dice animation.
type diceFrameMsg struct{ gen int }

// stepMsg advances the token animation by one square.
type stepMsg struct{ gen int }

// after returns a command that delivers msg once d has elapsed.
func after(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}
