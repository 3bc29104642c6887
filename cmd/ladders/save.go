package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ladders/internal/savegame"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Inspect or clear the save slot",
}

var saveShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved game",
	Long: `Decode the save slot and print its contents.

Examples:
  ladders save show
  ladders save show --raw`,
	Args: cobra.NoArgs,
	RunE: runSaveShow,
}

var saveClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the saved game",
	Args:  cobra.NoArgs,
	RunE:  runSaveClear,
}

var flagRaw bool

func init() {
	saveShowCmd.Flags().BoolVar(&flagRaw, "raw", false, "Print the stored JSON as is")
	saveCmd.AddCommand(saveShowCmd)
	saveCmd.AddCommand(saveClearCmd)
}

// withSaves opens the configured slot for the duration of fn.
func withSaves(fn func(context.Context, *savegame.Manager) error) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	ctx := context.Background()
	saves, closeSaves := openSaves(ctx, store, logger)
	defer closeSaves()
	if saves == nil {
		return fmt.Errorf("save slot %q is not available", settings.Save.Backend)
	}
	return fn(ctx, saves)
}

func runSaveClear(_ *cobra.Command, _ []string) error {
	return withSaves(func(ctx context.Context, saves *savegame.Manager) error {
		if err := saves.Clear(ctx); err != nil {
			return err
		}
		fmt.Printf("Cleared %s\n", saves.Slot().Location())
		return nil
	})
}

func runSaveShow(_ *cobra.Command, _ []string) error {
	return withSaves(showSave)
}

func showSave(ctx context.Context, saves *savegame.Manager) error {
	if flagRaw {
		data, err := saves.Slot().Read(ctx)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	rec, err := saves.Peek(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Saved game - %s\n", saves.Slot().Location())
	fmt.Println()
	fmt.Printf("  Turn:    %d\n", rec.Turn)
	fmt.Printf("  Snakes:  %d\n", len(rec.Snakes))
	fmt.Printf("  Ladders: %d\n", len(rec.Ladders))
	fmt.Println()

	fmt.Printf("  %-2s %-16s %-8s %-8s %s\n", "#", "Name", "Color", "Square", "")
	fmt.Printf("  %-2s %-16s %-8s %-8s %s\n", "-", "----", "-----", "------", "")
	for i, p := range rec.Players {
		var notes string
		if p.IsBot {
			notes = "bot"
		}
		if i == rec.CurrentIndex {
			notes += " <- to roll"
		}
		fmt.Printf("  %-2d %-16s %-8s %-8d %s\n", p.Number, p.Name, p.Color, p.Position, notes)
	}

	if w, ok := rec.Winner(); ok {
		fmt.Println()
		fmt.Printf("%s has already won.\n", w.Name)
	}
	return nil
}
