package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/games/slider"
	"github.com/vovakirdan/tui-tiles/internal/platform/tui"
	"github.com/vovakirdan/tui-tiles/internal/registry"
	"github.com/vovakirdan/tui-tiles/internal/storage"
	"github.com/vovakirdan/tui-tiles/internal/tiles"
)

var (
	flagRows    int
	flagColumns int
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a puzzle variant",
	Long: `Start playing the given variant (classic when omitted).

Controls:
  Arrows/WASD  - Move cursor
  Enter/Space  - Slide the tile under the cursor (swap: pick, then pick again)
  Mouse        - Click a tile to slide it, or drag it and let go
  P            - Pause
  R            - Deal a new board
  Esc          - Pause, then back
  Q/Ctrl+C     - Quit

Variants:
  classic    - Slide tiles into the open cell
  nightmare  - Classic, but tiles jump on their own now and then
  swap       - Swap any two tiles in the same row or column
  surprise   - Swap, with random jumps

Examples:
  tiles play
  tiles play swap --difficulty medium
  tiles play nightmare --rows 3 --cols 3
  tiles play --config ./my-tiles.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Override board rows")
	playCmd.Flags().IntVar(&flagColumns, "cols", 0, "Override board columns")
}

// variantID resolves a variant name or registry id to a registry id.
func variantID(args []string) (string, error) {
	if len(args) == 0 {
		return slider.IDFor(tiles.VariantClassic), nil
	}
	if registry.Exists(args[0]) {
		return args[0], nil
	}
	v, err := tiles.ParseVariant(strings.TrimPrefix(args[0], "tiles_"))
	if err != nil {
		return "", err
	}
	return slider.IDFor(v), nil
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID, err := variantID(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'tiles list' to see available variants.")
		os.Exit(1)
	}

	logger, closeLog := newLogger(io.Discard)
	configureSlider(logger, difficulty())
	slider.SetGrid(flagRows, flagColumns)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - the puzzle still works
		store = nil
	}

	_, runErr := tui.Run(game, store, cfg, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

