package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-tiles/internal/config"
	"github.com/vovakirdan/tui-tiles/internal/games/slider"
	"github.com/vovakirdan/tui-tiles/internal/tiles"
)

var (
	flagAutoDuration time.Duration
	flagAutoJumps    int
)

var autoCmd = &cobra.Command{
	Use:   "auto [variant]",
	Short: "Watch random jumps scramble a board",
	Long: `Deal a board of a jumping variant (nightmare when omitted) and let
the random jump timer run in real time, printing the board after every
jump. Nobody plays; stop with Ctrl+C, --duration or --jumps.

Examples:
  tiles auto
  tiles auto surprise --difficulty hard --jumps 5
  tiles auto --duration 2m --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runAuto,
}

func init() {
	autoCmd.Flags().DurationVar(&flagAutoDuration, "duration", 0, "Stop after this long (0 = until interrupted)")
	autoCmd.Flags().IntVar(&flagAutoJumps, "jumps", 0, "Stop after this many jumps (0 = no limit)")
}

func runAuto(_ *cobra.Command, args []string) {
	v := tiles.VariantNightmare
	if len(args) > 0 {
		parsed, err := tiles.ParseVariant(strings.TrimPrefix(args[0], "tiles_"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		v = parsed
	}
	if !v.RandomJumps() {
		fmt.Fprintf(os.Stderr, "Error: variant %q has no random jumps (try nightmare or surprise)\n", v)
		os.Exit(1)
	}

	logger, closeLog := newLogger(os.Stderr)
	defer closeLog()

	preset := difficulty()
	cfg, err := config.LoadTiles(flagConfig)
	if err != nil {
		logger.Warn("using default tiles config", "path", flagConfig, "err", err)
		cfg = config.DefaultTilesConfig()
	}
	grid := cfg.Grid(preset)

	session, err := tiles.New(slider.SessionOptions(cfg, v, grid, flagSeed, logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	session.Drain()

	schedule, _ := session.JumpSchedule()
	logger.Info("dealt", "id", session.ID(), "variant", v, "grid", fmt.Sprintf("%dx%d", grid.Rows, grid.Columns),
		"period", schedule.Period, "warnings", schedule.Warnings)
	fmt.Print(boardText(session.Board(), nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if flagAutoDuration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flagAutoDuration)
		defer cancel()
	}

	if err := watchJumps(ctx, session, flagAutoJumps); err != nil {
		logger.Error("stopped", "err", err)
		os.Exit(1)
	}
	logger.Info("done", "moves", session.Board().Moves(), "in place", session.Board().MatchedCount(),
		"elapsed", session.Board().Elapsed().Round(time.Second))
}

// watchJumps advances the session clock on every schedule signal until ctx
// ends, the board is solved by chance or limit jumps have happened.
func watchJumps(ctx context.Context, session *tiles.Game, limit int) error {
	schedule, ok := session.JumpSchedule()
	if !ok {
		return errors.New("no jump schedule")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	signals := make(chan tiles.JumpSignal)
	start := session.Board().Elapsed()
	g.Go(func() error {
		return tiles.RunJumps(ctx, schedule, start, signals)
	})
	g.Go(func() error {
		// The session is only touched from this goroutine.
		defer cancel()
		jumps := 0
		for {
			select {
			case <-ctx.Done():
				return nil
			case sig := <-signals:
				if err := session.Advance(sig.At - session.Board().Elapsed()); err != nil {
					return err
				}
				jumps += printEvents(session, sig)
				if session.Finished() {
					fmt.Println("Solved by chance!")
					return nil
				}
				if limit > 0 && jumps >= limit {
					return nil
				}
			}
		}
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

// printEvents reports drained session events and returns how many jumps
// happened.
func printEvents(session *tiles.Game, sig tiles.JumpSignal) int {
	jumps := 0
	for _, e := range session.Drain() {
		switch e.Kind {
		case tiles.EventJumpWarning:
			fmt.Printf("Tiles jump in %d!\n", e.Remaining)
		case tiles.EventRandomJump:
			jumps++
			fmt.Printf("\nSurprise! (%s)\n", sig.At.Round(time.Second))
			fmt.Print(boardText(session.Board(), e.IDs))
		}
	}
	return jumps
}

var (
	autoMatched = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	autoJumped  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
)

// boardText prints the board row by row, marking tiles that just jumped.
func boardText(b *tiles.Board, jumped []int) string {
	openID, hasOpen := b.OpenID()
	moved := make(map[int]bool, len(jumped))
	for _, id := range jumped {
		moved[id] = true
	}

	var sb strings.Builder
	for r := range b.Rows() {
		for c := range b.Columns() {
			pos := r*b.Columns() + c
			id, _ := b.TileAt(pos)
			cell := fmt.Sprintf("%4d", id)
			switch {
			case hasOpen && id == openID:
				cell = "   ."
			case moved[id]:
				cell = autoJumped.Render(cell)
			case tiles.IsMatched(id, pos):
				cell = autoMatched.Render(cell)
			}
			sb.WriteString(cell)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
