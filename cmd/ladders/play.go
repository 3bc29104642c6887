package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ladders/internal/config"
	"github.com/vovakirdan/tui-ladders/internal/dice"
	"github.com/vovakirdan/tui-ladders/internal/engine"
	"github.com/vovakirdan/tui-ladders/internal/platform/tui"
	"github.com/vovakirdan/tui-ladders/internal/player"
)

var (
	flagLayout     string
	flagLayoutFile string
	flagPlayers    []string
	flagBots       int
	flagRolls      []int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a new game",
	Long: `Start a new game of Snakes and Ladders.

Without --players a setup screen asks for names, bots and board.
A single human with no --bots gets one CPU opponent.

Controls:
  Space/Enter/R  - Roll the die
  P/Esc          - Pause
  S              - Save
  L              - Load the saved game
  N              - New game
  ?              - More help
  Q/Ctrl+C       - Quit

Examples:
  ladders play
  ladders play --players Ann,Bob
  ladders play --players Ann --bots 2 --layout gauntlet
  ladders play --players Ann,Bob --layout-file ./my-board.yaml
  ladders play --players Ann,Bob --rolls 3,6,49`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLayout, "layout", "", "Board layout id (see 'ladders layouts')")
	playCmd.Flags().StringVar(&flagLayoutFile, "layout-file", "", "Path to a custom layout YAML")
	playCmd.Flags().StringSliceVar(&flagPlayers, "players", nil, "Comma-separated human player names")
	playCmd.Flags().IntVar(&flagBots, "bots", 0, "Number of bot players")
	playCmd.Flags().IntSliceVar(&flagRolls, "rolls", nil, "Scripted dice values, repeated in order (debugging)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	layoutID := flagLayout
	if layoutID == "" {
		layoutID = settings.Layout
	}

	opts := player.RosterOptions{Humans: flagPlayers, Bots: flagBots}
	if len(flagPlayers) == 0 && !cmd.Flags().Changed("bots") {
		result, ok, err := tui.RunSetup(layoutID)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		opts = result.Roster
		if flagLayoutFile == "" {
			layoutID = result.Layout
		}
	}

	layout, err := config.LoadLayout(layoutID, flagLayoutFile)
	if err != nil {
		return err
	}
	b, err := layout.Board()
	if err != nil {
		return err
	}

	players, err := player.Roster(opts)
	if err != nil {
		return err
	}

	gameLog, closeLog := fileLogger(settings.LogPath)
	defer closeLog()

	s := seed()
	var roller dice.Roller = newRoller(layout.Sides(), s)
	if len(flagRolls) > 0 {
		roller = dice.NewScripted(flagRolls...)
	}

	g, err := engine.New(b, players, roller, engine.WithLogger(gameLog))
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	saves, closeSaves := openSaves(context.Background(), store, gameLog)
	defer closeSaves()

	gameLog.Info("starting game", "layout", layout.ID, "players", len(players), "seed", s)

	if err := tui.Run(g, layout, tui.Deps{Saves: saves, Store: store, Logger: gameLog}, runtimeConfig(s)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
