package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ladders/internal/platform/tui"
	"github.com/vovakirdan/tui-ladders/internal/storage"
)

var (
	flagLimit       int
	flagLeaderboard bool
	flagInteractive bool
	flagClear       bool
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show finished games and the leaderboard",
	Long: `Display recently finished games, or wins per player.

Examples:
  ladders results
  ladders results --limit 20
  ladders results --leaderboard
  ladders results -i`,
	Args: cobra.NoArgs,
	RunE: runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rows to show")
	resultsCmd.Flags().BoolVar(&flagLeaderboard, "leaderboard", false, "Show wins per player instead of recent games")
	resultsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse results in a full-screen view")
	resultsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded results")
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func runResults(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(settings.DBPath)
	if err != nil {
		return fmt.Errorf("opening results database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearResults(); err != nil {
			return err
		}
		fmt.Println("All results deleted.")
		return nil
	case flagInteractive:
		cfg := runtimeConfig(0)
		return tui.RunResults(store, cfg.ScreenW, cfg.ScreenH)
	case flagLeaderboard:
		return printLeaderboard(store)
	}
	return printRecent(store)
}

func printRecent(store *storage.Store) error {
	results, err := store.RecentResults(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("Recent games")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games finished yet.")
		fmt.Println()
		fmt.Println("Play 'ladders play' to the end to record one!")
		return nil
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		winner := r.Winner
		if r.WinnerBot {
			winner += " (bot)"
		}
		rows = append(rows, []string{
			r.CreatedAt.Format("2006-01-02 15:04"),
			winner,
			fmt.Sprintf("%d", r.Turns),
			fmt.Sprintf("%d", r.Players),
			r.Layout,
		})
	}
	fmt.Println(renderTable([]string{"Date", "Winner", "Turns", "Players", "Board"}, rows))

	stats, err := store.GetStats()
	if err == nil && stats.Games > 0 {
		fmt.Println()
		fmt.Printf("Games: %d  Avg turns: %.1f  Bot wins: %d  Fastest: %d turns\n",
			stats.Games, stats.AvgTurns, stats.BotWins, stats.Fastest)
	}
	return nil
}

func printLeaderboard(store *storage.Store) error {
	leaders, err := store.Leaderboard(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("Leaderboard")
	fmt.Println()

	if len(leaders) == 0 {
		fmt.Println("No wins recorded yet.")
		return nil
	}

	rows := make([][]string, 0, len(leaders))
	for i, e := range leaders {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			e.Name,
			fmt.Sprintf("%d", e.Wins),
			fmt.Sprintf("%d", e.BestTurns),
			e.LastWin.Format("2006-01-02 15:04"),
		})
	}
	fmt.Println(renderTable([]string{"Rank", "Player", "Wins", "Best", "Last win"}, rows))
	return nil
}

func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		BorderHeader(true).
		BorderRow(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		})

	return t.Render()
}
