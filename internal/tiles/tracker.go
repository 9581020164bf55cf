package tiles

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

// TrackerState is the phase of the interaction being tracked.
type TrackerState int

const (
	StateIdle        TrackerState = iota
	StateTracking                 // a gesture is moving the group
	StateHeld                     // a drag group was tapped and waits for a target
	StateCommitting               // the move was decided and awaits Settle
	StateRollingBack              // the move was abandoned and awaits Settle
)

// String returns the state name.
func (s TrackerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTracking:
		return "tracking"
	case StateHeld:
		return "held"
	case StateCommitting:
		return "committing"
	case StateRollingBack:
		return "rolling back"
	default:
		return "unknown"
	}
}

// TrackerConfig holds the thresholds and animation timings of drag tracking.
type TrackerConfig struct {
	TapThreshold    float64       // offset length still treated as a tap
	CommitThreshold float64       // percent of travel that commits on release
	Slide           time.Duration // full slide of one tile
	Surprise        time.Duration // thrown drag-mode swap
	Pop             time.Duration // pick-up / put-down pop
}

// DefaultTrackerConfig returns the standard tracking thresholds.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		TapThreshold:    10,
		CommitThreshold: 0.5,
		Slide:           100 * time.Millisecond,
		Surprise:        200 * time.Millisecond,
		Pop:             100 * time.Millisecond,
	}
}

// Sample is the live tracking result after one pointer sample.
type Sample struct {
	Offset          core.Vector // bounded displacement of the group
	Percent         float64     // travel toward the open cell in [0, 1]
	CrossedMidpoint bool        // this sample crossed the commit threshold
	WillCommit      bool        // releasing now would commit
}

// Outcome is the kind of decision reached at the end of a gesture.
type Outcome int

const (
	OutcomeNone     Outcome = iota // still tracking
	OutcomeCommit                  // apply the move
	OutcomeRollback                // undo the visual offset
	OutcomeHold                    // a drag group stays picked up
	OutcomeRelease                 // a held group is put back without moving
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeCommit:
		return "commit"
	case OutcomeRollback:
		return "rollback"
	case OutcomeHold:
		return "hold"
	case OutcomeRelease:
		return "release"
	default:
		return "unknown"
	}
}

// Decision tells the caller what to do with the tracked group.
type Decision struct {
	Outcome   Outcome
	Group     MovementGroup
	TargetID  int           // tile the group moves into or swaps with
	Percent   float64       // travel at release
	Crossings int           // total midpoint crossings during the gesture
	Duration  time.Duration // remaining animation time
	Cue       bool          // play the slide cue on commit
	Pop       bool          // play the put-down cue on release
}

// Tracker follows one movement group from pick-up to commit or rollback.
// Only one group is tracked at a time.
type Tracker struct {
	cfg TrackerConfig

	state      TrackerState
	group      MovementGroup
	axis       Direction
	tileLength float64

	offset          core.Vector
	lastTranslation core.Vector
	percent         float64
	crossings       int
	possibleTap     bool
	willMove        bool
	restarted       bool
}

// NewTracker creates an idle tracker.
func NewTracker(cfg TrackerConfig) *Tracker {
	return &Tracker{cfg: cfg}
}

// State returns the current phase.
func (t *Tracker) State() TrackerState { return t.state }

// Active reports whether a group is owned by the tracker.
func (t *Tracker) Active() bool { return t.state != StateIdle }

// Group returns the tracked group.
func (t *Tracker) Group() (MovementGroup, bool) {
	return t.group, t.state != StateIdle
}

// Current returns the live offset and percent for rendering.
func (t *Tracker) Current() Sample {
	return Sample{
		Offset:     t.offset,
		Percent:    t.percent,
		WillCommit: t.willMove,
	}
}

// Start begins tracking a group. tileLength is the travel distance of one
// tile in pointer units; landscape rotates the projection axis.
func (t *Tracker) Start(g MovementGroup, tileLength float64, landscape bool) error {
	if t.state != StateIdle {
		return ErrInteractionActive
	}
	if g.Empty() {
		return ErrEmptyGroup
	}

	*t = Tracker{
		cfg:         t.cfg,
		state:       StateTracking,
		group:       g,
		axis:        g.Direction.Rotated(landscape),
		tileLength:  tileLength,
		possibleTap: true,
		willMove:    true,
	}
	return nil
}

// Move feeds the gesture's cumulative translation since it began.
func (t *Tracker) Move(translation core.Vector) Sample {
	if t.state != StateTracking {
		return t.Current()
	}

	offset, percent := t.project(translation)
	last := t.percent
	defer func() {
		t.offset = offset
		t.percent = percent
	}()

	if t.possibleTap && offset.Length() > t.cfg.TapThreshold {
		t.possibleTap = false
	}

	sample := Sample{Offset: offset, Percent: percent, WillCommit: t.willMove}
	if t.axis == DirDrag {
		return sample
	}

	threshold := t.cfg.CommitThreshold
	t.willMove = t.possibleTap || percent >= threshold || (last != 0 && percent >= last)
	sample.WillCommit = t.willMove

	if math.Min(percent, last) < threshold && math.Max(percent, last) >= threshold {
		t.crossings++
		sample.CrossedMidpoint = true
	}
	return sample
}

// project turns the gesture translation into a bounded group offset.
func (t *Tracker) project(translation core.Vector) (core.Vector, float64) {
	delta := translation.Sub(t.lastTranslation)
	t.lastTranslation = translation
	l := t.tileLength
	if l <= 0 {
		return core.Vector{}, 0
	}

	switch t.axis {
	case DirUp:
		dy := core.ClampF(t.offset.DY+delta.DY, -l, 0)
		return core.Vector{DY: dy}, dy / -l
	case DirDown:
		dy := core.ClampF(t.offset.DY+delta.DY, 0, l)
		return core.Vector{DY: dy}, dy / l
	case DirLeft:
		dx := core.ClampF(t.offset.DX+delta.DX, -l, 0)
		return core.Vector{DX: dx}, dx / -l
	case DirRight:
		dx := core.ClampF(t.offset.DX+delta.DX, 0, l)
		return core.Vector{DX: dx}, dx / l
	case DirDrag:
		return translation, math.Min(1, translation.Length()/l)
	default:
		return core.Vector{}, 0
	}
}

// End finishes the gesture.
//
// openID is the board's open tile (0 in swap mode) and dropID the tile under
// the pointer at release (0 when released off the board).
func (t *Tracker) End(openID, dropID int) Decision {
	if t.state != StateTracking {
		return Decision{Outcome: OutcomeNone, Group: t.group}
	}

	if t.group.Direction == DirDrag && dropID != 0 {
		if !t.group.Contains(dropID) {
			return t.commit(dropID)
		}
		switch {
		case t.restarted:
			return t.release(t.possibleTap)
		case !t.possibleTap:
			return t.rollback()
		default:
			t.state = StateHeld
			return Decision{Outcome: OutcomeHold, Group: t.group}
		}
	}

	if t.willMove && openID != 0 {
		return t.commit(openID)
	}
	return t.rollback()
}

// Press handles a new press while a drag group is held. Pressing a member of
// the group resumes tracking it; pressing another tile swaps with it.
func (t *Tracker) Press(id int) (Decision, error) {
	if t.state != StateHeld {
		return Decision{}, ErrInteractionActive
	}
	if t.group.Contains(id) {
		t.state = StateTracking
		t.restarted = true
		t.lastTranslation = core.Vector{}
		return Decision{Outcome: OutcomeNone, Group: t.group}, nil
	}
	return t.commit(id), nil
}

// Cancel abandons whatever is tracked and returns to idle.
func (t *Tracker) Cancel() Decision {
	if t.state == StateIdle {
		return Decision{}
	}
	d := t.rollback()
	t.Settle()
	return d
}

// Settle returns to idle once the caller has applied a commit or rollback.
func (t *Tracker) Settle() {
	*t = Tracker{cfg: t.cfg}
}

func (t *Tracker) commit(targetID int) Decision {
	d := t.decision(OutcomeCommit)
	d.TargetID = targetID
	d.Cue = t.crossings%2 == 0
	if t.group.Direction == DirDrag {
		d.Duration = t.cfg.Surprise
	} else {
		d.Duration = scale(t.cfg.Slide, 1-t.percent)
	}
	t.state = StateCommitting
	return d
}

func (t *Tracker) rollback() Decision {
	d := t.decision(OutcomeRollback)
	d.Duration = scale(t.cfg.Slide, t.percent)
	t.state = StateRollingBack
	return d
}

func (t *Tracker) release(pop bool) Decision {
	d := t.decision(OutcomeRelease)
	d.Pop = pop
	t.Settle()
	return d
}

func (t *Tracker) decision(o Outcome) Decision {
	return Decision{
		Outcome:   o,
		Group:     t.group,
		Percent:   t.percent,
		Crossings: t.crossings,
	}
}

func scale(d time.Duration, f float64) time.Duration {
	return time.Duration(float64(d) * f)
}
