// tiles is Dave's Tiles, a sliding tile puzzle for the terminal.
//
// Usage:
//
//	tiles list              - List puzzle variants
//	tiles play [variant]    - Play a variant (default: classic)
//	tiles menu              - Pick variant and difficulty interactively
//	tiles serve             - Start SSH server for remote play
//	tiles scores [variant]  - Show best times for a variant
//	tiles auto [variant]    - Watch random jumps scramble a board
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible deals
//	--db <path>           - Set database path (default: ~/.arcade/tiles.db)
//	--config <path>       - Custom tiles.yaml
//	--difficulty <preset> - easy, medium or hard
//	--log <path>          - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tiles/internal/config"
	"github.com/vovakirdan/tui-tiles/internal/games/slider"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tiles",
	Short: "Dave's Tiles - a sliding tile puzzle in your terminal",
	Long: `Dave's Tiles is a sliding tile puzzle. Slide tiles into the open
cell (or swap them, in the swap variants) until every tile is home.

Available commands:
  list     - Show all puzzle variants
  play     - Play a variant directly
  menu     - Interactive variant and difficulty picker
  serve    - Start SSH server for remote play
  scores   - View best times
  auto     - Watch random jumps scramble a board

Examples:
  tiles list
  tiles play
  tiles play nightmare --difficulty hard
  tiles menu
  tiles serve --ssh :2222
  tiles scores swap`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/tiles.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tiles.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "easy", "Difficulty preset: easy, medium, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(autoCmd)
}

// difficulty parses the --difficulty flag, exiting on a bad value.
func difficulty() config.DifficultyPreset {
	p, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return p
}

// newLogger builds the command logger. The full-screen commands own the
// terminal, so they only log when --log names a file; fallback is used
// otherwise. The returned close func is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func()) {
	out, closeFn := fallback, func() {}
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
		} else {
			out, closeFn = f, func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "tiles",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn
}

// configureSlider applies the global flags to new puzzle instances.
func configureSlider(logger *log.Logger, preset config.DifficultyPreset) {
	slider.SetConfigPath(flagConfig)
	slider.SetDifficulty(preset)
	slider.SetLogger(logger)
}
