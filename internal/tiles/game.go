package tiles

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

// DefaultTileLength is the pointer travel of one tile, in pointer units.
const DefaultTileLength = 60

// Options configures a game session.
type Options struct {
	Rows    int
	Columns int
	Variant Variant
	Seed    int64 // 0 seeds from system entropy

	Tracker         TrackerConfig
	TileLength      float64
	Warnings        int           // warnings before each random jump
	WarningInterval time.Duration // spacing between warnings
	MaxAttempts     int           // rejection sampling bound per random pick

	Logger *log.Logger
}

// Game is a single puzzle session. It owns the board, the drag tracker and
// the event queue. A Game is not safe for concurrent use; one goroutine
// drives it and reads its events.
type Game struct {
	id      string
	opts    Options
	board   *Board
	tracker *Tracker
	rng     Rand
	log     *log.Logger

	events      []Event
	paused      bool
	finished    bool
	landscape   bool
	jumps       *JumpSchedule
	pendingJump bool
}

// New creates a session and deals the first game.
func New(opts Options) (*Game, error) {
	if opts.Variant == "" {
		opts.Variant = VariantClassic
	}
	if opts.TileLength <= 0 {
		opts.TileLength = DefaultTileLength
	}
	if opts.Tracker == (TrackerConfig{}) {
		opts.Tracker = DefaultTrackerConfig()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	board, err := NewBoard(opts.Rows, opts.Columns, opts.Variant.Mode())
	if err != nil {
		return nil, err
	}

	g := &Game{
		opts:    opts,
		board:   board,
		tracker: NewTracker(opts.Tracker),
		rng:     NewRand(opts.Seed),
		log:     opts.Logger,
	}
	if err := g.NewGame(); err != nil {
		return nil, err
	}
	return g, nil
}

// ID returns the identifier of the current deal.
func (g *Game) ID() string { return g.id }

// Variant returns the game type.
func (g *Game) Variant() Variant { return g.opts.Variant }

// Board returns the board. Callers must treat it as read-only.
func (g *Game) Board() *Board { return g.board }

// Paused reports whether the clock is stopped.
func (g *Game) Paused() bool { return g.paused }

// Finished reports whether the puzzle has been solved.
func (g *Game) Finished() bool { return g.finished }

// Interaction returns the tracked group, its live sample and the tracker phase.
func (g *Game) Interaction() (MovementGroup, Sample, TrackerState) {
	group, _ := g.tracker.Group()
	return group, g.tracker.Current(), g.tracker.State()
}

// SetLandscape selects whether the board is displayed rotated. It applies
// to gestures started afterwards.
func (g *Game) SetLandscape(landscape bool) { g.landscape = landscape }

// Landscape reports whether the board is displayed rotated.
func (g *Game) Landscape() bool { return g.landscape }

// Drain returns the queued events and empties the queue.
func (g *Game) Drain() []Event {
	events := g.events
	g.events = nil
	return events
}

// NewGame deals a fresh shuffled board and restarts the clock.
func (g *Game) NewGame() error {
	g.tracker.Settle()
	if err := ShuffleToStart(g.board, g.rng, g.opts.MaxAttempts); err != nil {
		return fmt.Errorf("tiles: shuffle %dx%d %s: %w", g.board.rows, g.board.columns, g.opts.Variant, err)
	}

	g.id = uuid.NewString()
	g.paused = false
	g.finished = false
	g.pendingJump = false
	g.events = nil
	g.scheduleJumps()

	g.log.Debug("game started", "id", g.id, "variant", g.opts.Variant,
		"rows", g.board.rows, "columns", g.board.columns)
	g.emit(Event{Kind: EventGameStarted, IDs: g.board.IDs()})
	return nil
}

// scheduleJumps anchors the random jump timeline at the current game time.
func (g *Game) scheduleJumps() {
	if !g.opts.Variant.RandomJumps() {
		g.jumps = nil
		return
	}
	s := NewJumpSchedule(
		JumpPeriod(g.board.mode, g.board.rows, g.board.columns),
		g.opts.Warnings,
		g.opts.WarningInterval,
		g.board.Elapsed(),
	)
	g.jumps = &s
}

// JumpSchedule returns the active random jump timeline, if any.
func (g *Game) JumpSchedule() (JumpSchedule, bool) {
	if g.jumps == nil {
		return JumpSchedule{}, false
	}
	return *g.jumps, true
}

// Pause stops the clock and abandons any gesture in progress.
func (g *Game) Pause() {
	if g.paused || g.finished {
		return
	}
	g.paused = true
	if g.tracker.Active() {
		g.apply(g.tracker.Cancel())
	}
}

// Resume restarts the clock and re-anchors the random jump timeline.
func (g *Game) Resume() {
	if !g.paused {
		return
	}
	g.paused = false
	g.scheduleJumps()
}

func (g *Game) playing() bool {
	return !g.paused && !g.finished
}

// PointerDown starts an interaction at a board position. Positions outside
// the board are ignored.
func (g *Game) PointerDown(position int) error {
	_, err := g.press(position)
	return err
}

func (g *Game) press(position int) (Decision, error) {
	if !g.playing() {
		return Decision{}, nil
	}
	id, ok := g.board.TileAt(position)
	if !ok {
		return Decision{}, nil
	}

	switch g.tracker.State() {
	case StateIdle:
		group, err := Resolve(g.board, position)
		if err != nil {
			return Decision{}, err
		}
		if group.Empty() {
			return Decision{}, nil
		}
		if err := g.tracker.Start(group, g.opts.TileLength, g.landscape); err != nil {
			return Decision{}, err
		}
		if group.Direction == DirDrag {
			g.emit(Event{Kind: EventTilePickedUp, Direction: DirDrag, IDs: group.IDs, Cue: true})
		}
		return Decision{}, nil
	case StateHeld:
		d, err := g.tracker.Press(id)
		if err != nil {
			return Decision{}, err
		}
		return d, g.apply(d)
	default:
		return Decision{}, ErrInteractionActive
	}
}

// PointerMove feeds the gesture translation since PointerDown.
func (g *Game) PointerMove(translation core.Vector) Sample {
	if g.tracker.State() != StateTracking {
		return g.tracker.Current()
	}
	s := g.tracker.Move(translation)
	if s.CrossedMidpoint {
		group, _ := g.tracker.Group()
		g.emit(Event{Kind: EventMidpointCrossed, Direction: group.Direction, IDs: group.IDs, Cue: true})
	}
	return s
}

// PointerUp ends the gesture at a board position; a position outside the
// board means the pointer was released off the board.
func (g *Game) PointerUp(position int) (Decision, error) {
	if g.tracker.State() != StateTracking {
		return Decision{}, nil
	}
	dropID, _ := g.board.TileAt(position)
	openID, _ := g.board.OpenID()
	d := g.tracker.End(openID, dropID)
	return d, g.apply(d)
}

// Tap is a press and release at the same position without movement.
func (g *Game) Tap(position int) (Decision, error) {
	d, err := g.press(position)
	if err != nil || d.Outcome != OutcomeNone {
		return d, err
	}
	return g.PointerUp(position)
}

// apply carries out a tracker decision on the board.
func (g *Game) apply(d Decision) error {
	switch d.Outcome {
	case OutcomeCommit:
		defer g.tracker.Settle()
		if err := Commit(g.board, d.Group, d.TargetID); err != nil {
			g.log.Warn("move rejected", "id", g.id, "group", d.Group.IDs, "target", d.TargetID, "err", err)
			g.emit(Event{Kind: EventMoveRolledBack, Direction: d.Group.Direction, IDs: d.Group.IDs})
			return err
		}
		g.emit(Event{
			Kind:      EventMoveCommitted,
			Direction: d.Group.Direction,
			IDs:       d.Group.IDs,
			TargetID:  d.TargetID,
			Duration:  d.Duration,
			Cue:       d.Cue,
		})
		g.checkFinished()
	case OutcomeRollback:
		Rollback(g.board, d.Group)
		g.tracker.Settle()
		g.emit(Event{Kind: EventMoveRolledBack, Direction: d.Group.Direction, IDs: d.Group.IDs, Duration: d.Duration})
	case OutcomeRelease:
		g.emit(Event{Kind: EventTileDropped, Direction: d.Group.Direction, IDs: d.Group.IDs, Cue: d.Pop})
	}
	return nil
}

func (g *Game) checkFinished() {
	if g.finished || !g.board.IsFinished() {
		return
	}
	g.finished = true
	g.log.Info("puzzle solved", "id", g.id, "variant", g.opts.Variant,
		"moves", g.board.Moves(), "elapsed", g.board.Elapsed().Round(time.Second))
	g.emit(Event{Kind: EventGameFinished})
}

// Advance moves the game clock forward, firing any random jump warnings
// and jumps that fall due. A jump that comes due during a gesture waits
// until the gesture ends.
func (g *Game) Advance(dt time.Duration) error {
	if !g.playing() {
		return nil
	}
	prev := g.board.Elapsed()
	g.board.AddElapsed(dt)

	if g.jumps != nil {
		for _, sig := range g.jumps.Between(prev, g.board.Elapsed()) {
			if sig.Kind == SignalWarning {
				g.emit(Event{Kind: EventJumpWarning, Remaining: sig.Remaining, Cue: true})
				continue
			}
			g.pendingJump = true
		}
	}

	if !g.pendingJump {
		return nil
	}
	err := g.RandomJump()
	if errors.Is(err, ErrInteractionActive) {
		return nil
	}
	g.pendingJump = false
	return err
}

// RandomJump moves tiles at random. It refuses while a gesture is being
// tracked or the game is not in play. A held drag group is put back and
// its tile is left where it is.
func (g *Game) RandomJump() error {
	if !g.playing() {
		return ErrNotPlaying
	}

	var excluded []int
	switch g.tracker.State() {
	case StateIdle:
	case StateHeld:
		group, _ := g.tracker.Group()
		positions, err := group.Positions(g.board)
		if err != nil {
			return err
		}
		excluded = positions
		g.apply(g.tracker.Cancel())
	default:
		return ErrInteractionActive
	}

	moved, err := RandomLegalMove(g.board, g.rng, excluded, g.opts.MaxAttempts)
	if err != nil {
		return err
	}
	ids := lo.Map(moved, func(p int, _ int) int {
		id, _ := g.board.TileAt(p)
		return id
	})
	g.log.Debug("random jump", "id", g.id, "tiles", ids)
	g.emit(Event{Kind: EventRandomJump, IDs: ids, Duration: g.opts.Tracker.Surprise, Cue: true})
	g.checkFinished()
	return nil
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}
