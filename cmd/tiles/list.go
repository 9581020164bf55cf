package main

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tiles/internal/games/slider"
	"github.com/vovakirdan/tui-tiles/internal/tiles"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all puzzle variants",
	Long:  `Shows every puzzle variant and the id to pass to play and scores.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	variants := tiles.Variants()

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := lo.Max(append(lo.Map(variants, func(v tiles.Variant, _ int) int {
		return len(v)
	}), len("Variant")))

	// Print header
	fmt.Printf("  %-*s  %-12s  %-6s  %s\n", maxNameLen, "Variant", "ID", "Jumps", "Title")
	fmt.Printf("  %-*s  %-12s  %-6s  %s\n", maxNameLen, "-------", "--", "-----", "-----")

	for _, v := range variants {
		jumps := "no"
		if v.RandomJumps() {
			jumps = "yes"
		}
		fmt.Printf("  %-*s  %-12s  %-6s  %s\n", maxNameLen, v, slider.IDFor(v), jumps, v.Title())
	}

	fmt.Println()
	fmt.Println("Run 'tiles play <variant>' to play.")
}
