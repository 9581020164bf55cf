package slider

import "time"

// StateType is the coarse phase of the game.
type StateType string

const (
	StatePlaying     StateType = "playing"
	StatePaused      StateType = "paused"
	StateSolved      StateType = "solved"
	StatePausedSmall StateType = "paused_small_window"
	StateFailed      StateType = "failed"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Variant    string
	Difficulty string
	Rows       int
	Columns    int
	Landscape  bool
	Board      []int // tile id per position, row-major
	Moves      int
	Elapsed    time.Duration
	Matched    int
	Tracker    string // tracker phase
	Warning    int    // warnings left while a jump warning is shown
	State      StateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       g.tick,
		Variant:    string(g.variant),
		Difficulty: string(g.difficulty),
		Landscape:  g.layout.Landscape,
		Warning:    g.warning,
	}
	if g.session == nil {
		snap.State = StateFailed
		return snap
	}

	b := g.session.Board()
	_, _, phase := g.session.Interaction()
	snap.Rows = b.Rows()
	snap.Columns = b.Columns()
	snap.Board = b.IDs()
	snap.Moves = b.Moves()
	snap.Elapsed = b.Elapsed()
	snap.Matched = b.MatchedCount()
	snap.Tracker = phase.String()

	switch {
	case g.tooSmall:
		snap.State = StatePausedSmall
	case g.session.Finished():
		snap.State = StateSolved
	case g.session.Paused():
		snap.State = StatePaused
	default:
		snap.State = StatePlaying
	}
	return snap
}
