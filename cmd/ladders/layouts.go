package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ladders/internal/config"
	"github.com/vovakirdan/tui-ladders/internal/registry"
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List available board layouts",
	Long:  `Shows the built-in board layouts.`,
	Args:  cobra.NoArgs,
	Run:   runLayouts,
}

var layoutsShowCmd = &cobra.Command{
	Use:   "show <layout>",
	Short: "Print a built-in layout as YAML",
	Long: `Print the YAML for a built-in layout. Copy it to
~/.ladders/layouts/<id>.yaml to override it, or pass it to
'ladders play --layout-file'.

Examples:
  ladders layouts show classic > my-board.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runLayoutsShow,
}

func init() {
	layoutsCmd.AddCommand(layoutsShowCmd)
}

func runLayouts(_ *cobra.Command, _ []string) {
	layouts := registry.List()

	if len(layouts) == 0 {
		fmt.Println("No layouts available.")
		return
	}

	fmt.Println("Available layouts:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range layouts {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Printf("  %-*s  %-7s  %-7s  %s\n", maxIDLen, "ID", "Snakes", "Ladders", "Title")
	fmt.Printf("  %-*s  %-7s  %-7s  %s\n", maxIDLen, "--", "------", "-------", "-----")

	for _, info := range layouts {
		l, err := registry.Create(info.ID)
		if err != nil {
			continue
		}
		fmt.Printf("  %-*s  %-7d  %-7d  %s\n", maxIDLen, l.ID, len(l.Snakes), len(l.Ladders), l.Title)
	}

	fmt.Println()
	fmt.Println("Run 'ladders play --layout <id>' to play on a layout.")
}

func runLayoutsShow(_ *cobra.Command, args []string) error {
	data, err := config.DefaultLayoutYAML(args[0])
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
