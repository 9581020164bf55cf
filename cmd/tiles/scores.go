package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tiles/internal/registry"
	"github.com/vovakirdan/tui-tiles/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresAll   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show best times for a variant",
	Long: `Display the fastest solves for a variant (classic when omitted).

Results are filtered by --difficulty unless --all is given.

Examples:
  tiles scores
  tiles scores swap --difficulty hard
  tiles scores nightmare --all`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every difficulty")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID, err := variantID(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'tiles list' to see available variants.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	preset := difficulty()
	level, heading := string(preset), preset.Title()
	if flagScoresAll {
		level = ""
		heading = "All"
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	results, err := store.TopResults(gameID, level, flagScoresLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Times - %s - %s\n", title, heading)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No solves recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tiles play %s' to set the first time!\n", args0(args))
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-7s  %s\n", "Rank", "Time", "Moves", "Grid", "Level", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-7s  %s\n", "----", "----", "-----", "----", "-----", "----")

	for i, r := range results {
		grid := fmt.Sprintf("%dx%d", r.Rows, r.Columns)
		fmt.Printf("  %-4d  %-8s  %-6d  %-6s  %-7s  %s\n",
			i+1, clock(r.Duration), r.Moves, grid, r.Difficulty, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if level != "" {
		best, err := store.BestResult(gameID, level)
		if err == nil && best != nil {
			fmt.Println()
			fmt.Printf("Best: %s in %d moves\n", clock(best.Duration), best.Moves)
		}
	}
}

func args0(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func clock(d time.Duration) string {
	s := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
