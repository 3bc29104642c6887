package main

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-ladders/internal/core"
	"github.com/vovakirdan/tui-ladders/internal/dice"
	"github.com/vovakirdan/tui-ladders/internal/savegame"
	"github.com/vovakirdan/tui-ladders/internal/storage"
)

// seed returns the --seed flag, or a time-based seed when unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newRoller returns a seeded die. Settings override the layout's face count.
func newRoller(layoutSides int, seed int64) *dice.Dice {
	sides := layoutSides
	if settings.DiceSides > 0 {
		sides = settings.DiceSides
	}
	return dice.NewSeeded(sides, seed)
}

// runtimeConfig builds the game screen config from settings and the terminal size.
func runtimeConfig(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = seed
	cfg.BotDelay = settings.Timing.BotDelay()
	cfg.StepDelay = settings.Timing.StepDelay()
	cfg.DiceFrames = settings.Timing.DiceFrames
	cfg.DiceFrame = settings.Timing.DiceFrame()
	return cfg
}

// openStore opens the results database. Failure is reported and the
// game continues without recording results.
func openStore() *storage.Store {
	store, err := storage.Open(settings.DBPath)
	if err != nil {
		logger.Warn("could not open results database", "path", settings.DBPath, "err", err)
		return nil
	}
	return store
}

// openSaves opens the configured save slot. A nil manager disables save and load.
func openSaves(ctx context.Context, store *storage.Store, l *log.Logger) (*savegame.Manager, func()) {
	slot, closeSlot, err := savegame.OpenSlot(ctx, settings.Save, store)
	if err != nil {
		logger.Warn("save slot unavailable", "backend", settings.Save.Backend, "err", err)
		return nil, func() {}
	}
	return savegame.NewManager(slot, l), func() {
		if err := closeSlot(); err != nil {
			logger.Warn("closing save slot", "err", err)
		}
	}
}
