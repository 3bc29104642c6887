package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ladders/internal/board"
	"github.com/vovakirdan/tui-ladders/internal/dice"
	"github.com/vovakirdan/tui-ladders/internal/engine"
	"github.com/vovakirdan/tui-ladders/internal/platform/tui"
	"github.com/vovakirdan/tui-ladders/internal/registry"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Resume the saved game",
	Long: `Load the game from the save slot and continue playing.

The slot backend (file, sqlite or redis) comes from settings.

Examples:
  ladders load
  LADDERS_SAVE_BACKEND=sqlite ladders load`,
	Args: cobra.NoArgs,
	RunE: runLoad,
}

// savedLayout labels a game restored from the slot; its links come from the record.
var savedLayout = registry.Layout{ID: "saved", Title: "Saved game", DiceSides: dice.DefaultSides}

func runLoad(_ *cobra.Command, _ []string) error {
	gameLog, closeLog := fileLogger(settings.LogPath)
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	ctx := context.Background()
	saves, closeSaves := openSaves(ctx, store, gameLog)
	defer closeSaves()
	if saves == nil {
		return fmt.Errorf("save slot %q is not available", settings.Save.Backend)
	}

	s := seed()
	g, err := saves.LoadGame(ctx, board.Empty(), newRoller(savedLayout.Sides(), s), engine.WithLogger(gameLog))
	if err != nil {
		return fmt.Errorf("loading %s: %w", saves.Slot().Location(), err)
	}

	if err := tui.Run(g, savedLayout, tui.Deps{Saves: saves, Store: store, Logger: gameLog}, runtimeConfig(s)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
