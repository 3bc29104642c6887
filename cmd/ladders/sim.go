package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ladders/internal/config"
	"github.com/vovakirdan/tui-ladders/internal/engine"
	"github.com/vovakirdan/tui-ladders/internal/player"
	"github.com/vovakirdan/tui-ladders/internal/registry"
)

// maxSimTurns stops a simulated game that cannot finish.
const maxSimTurns = 10000

var (
	flagGames      int
	flagSimPlayers int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Simulate bot-only games",
	Long: `Play games between bots without the TUI and print how long they took
and which seat won. Useful for checking a custom layout.

Examples:
  ladders sim
  ladders sim --games 1000 --players 4
  ladders sim --layout-file ./my-board.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagGames, "games", 100, "Number of games to play")
	simCmd.Flags().IntVar(&flagSimPlayers, "players", 2, "Number of bot players")
	simCmd.Flags().StringVar(&flagLayout, "layout", "", "Board layout id")
	simCmd.Flags().StringVar(&flagLayoutFile, "layout-file", "", "Path to a custom layout YAML")
}

// simSummary aggregates simulated games.
type simSummary struct {
	Games      int
	Turns      int
	Min, Max   int
	SeatWins   []int
	Unfinished int
}

func (s simSummary) mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Turns) / float64(s.Games)
}

var errSimStuck = errors.New("game did not finish")

func runSim(_ *cobra.Command, _ []string) error {
	if flagGames < 1 {
		return fmt.Errorf("--games must be at least 1")
	}

	layoutID := flagLayout
	if layoutID == "" {
		layoutID = settings.Layout
	}
	layout, err := config.LoadLayout(layoutID, flagLayoutFile)
	if err != nil {
		return err
	}

	s := seed()
	sum, err := simulate(layout, flagSimPlayers, flagGames, s)
	if err != nil {
		return err
	}

	logger.Debug("simulation finished", "layout", layout.ID, "games", sum.Games, "seed", s)

	fmt.Printf("Simulated %d games on %s with %d bots\n", flagGames, layout.Title, flagSimPlayers)
	fmt.Println()
	fmt.Printf("  Mean turns: %.2f\n", sum.mean())
	fmt.Printf("  Fastest:    %d\n", sum.Min)
	fmt.Printf("  Slowest:    %d\n", sum.Max)
	if sum.Unfinished > 0 {
		fmt.Printf("  Stuck:      %d (stopped after %d turns)\n", sum.Unfinished, maxSimTurns)
	}
	fmt.Println()
	for i, w := range sum.SeatWins {
		fmt.Printf("  Seat %d wins: %d (%.1f%%)\n", i+1, w, 100*float64(w)/float64(flagGames))
	}
	return nil
}

// simulate plays bot-only games on layout. One die is shared by all
// games so the whole run is reproducible from the seed.
func simulate(layout registry.Layout, bots, games int, seed int64) (simSummary, error) {
	b, err := layout.Board()
	if err != nil {
		return simSummary{}, err
	}

	players, err := player.Roster(player.RosterOptions{Bots: bots})
	if err != nil {
		return simSummary{}, err
	}

	g, err := engine.New(b, players, newRoller(layout.Sides(), seed))
	if err != nil {
		return simSummary{}, err
	}

	sum := simSummary{SeatWins: make([]int, len(players))}
	for range games {
		g.Start()
		if err := playOut(g); err != nil {
			sum.Unfinished++
			continue
		}

		turns := g.Turn()
		sum.Games++
		sum.Turns += turns
		if sum.Min == 0 || turns < sum.Min {
			sum.Min = turns
		}
		if turns > sum.Max {
			sum.Max = turns
		}
		sum.SeatWins[g.Winner().Number-1]++
	}
	return sum, nil
}

// playOut takes turns until someone wins.
func playOut(g *engine.Game) error {
	for !g.IsOver() {
		if g.Turn() > maxSimTurns {
			return errSimStuck
		}
		g.TakeTurn()
	}
	return nil
}
