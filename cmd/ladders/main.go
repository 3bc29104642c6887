// ladders is a terminal Snakes and Ladders game.
//
// Usage:
//
//	ladders play             - Start a new game (setup screen unless --players is given)
//	ladders load             - Resume the saved game
//	ladders layouts          - List available board layouts
//	ladders results          - Show finished games and the leaderboard
//	ladders save show        - Print the saved game
//	ladders save clear       - Delete the saved game
//	ladders sim              - Run bot-only games and print statistics
//	ladders config           - Print effective settings
//
// Global flags:
//
//	--config <path>    - Settings file (default: ~/.ladders/config.yml)
//	--db <path>        - Results database path
//	--seed <value>     - Dice seed for reproducible games
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ladders/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagSeed     int64
	flagLogLevel string

	// Loaded in PersistentPreRunE
	settings config.Settings
	logger   *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ladders",
	Short: "Snakes and Ladders in your terminal",
	Long: `Snakes and Ladders for 2-4 players on a 10x10 board.
Players take turns rolling a die; ladders carry a token up, snakes
send it back down. The first to land exactly on square 100 wins.

Available commands:
  play     - Start a new game
  load     - Resume the saved game
  layouts  - Show available boards
  results  - View finished games and the leaderboard
  save     - Inspect or clear the save slot
  sim      - Simulate bot-only games
  config   - Print effective settings

Examples:
  ladders play
  ladders play --players Ann,Bob --layout quick
  ladders play --players Ann --bots 2
  ladders load
  ladders sim --games 500 --players 4`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Settings file (default ~/.ladders/config.yml)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (overrides settings)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Dice seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(layoutsCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings reads settings, applies flag overrides and builds the stderr logger.
func loadSettings(cmd *cobra.Command, _ []string) error {
	s, err := config.LoadSettings(flagConfig)
	if err != nil {
		return err
	}
	if flagDBPath != "" {
		s.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		s.LogLevel = flagLogLevel
	}

	l, err := newLogger(os.Stderr, s.LogLevel)
	if err != nil {
		return err
	}

	settings = s
	logger = l
	return nil
}
