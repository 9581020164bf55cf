package tiles

import "time"

// EventKind identifies a game event.
type EventKind int

const (
	EventGameStarted    EventKind = iota
	EventTilePickedUp             // a drag group was picked up
	EventMidpointCrossed          // a slide crossed the commit threshold
	EventMoveCommitted
	EventMoveRolledBack
	EventTileDropped // a held drag group was put back
	EventJumpWarning
	EventRandomJump
	EventGameFinished
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventGameStarted:
		return "game_started"
	case EventTilePickedUp:
		return "tile_picked_up"
	case EventMidpointCrossed:
		return "midpoint_crossed"
	case EventMoveCommitted:
		return "move_committed"
	case EventMoveRolledBack:
		return "move_rolled_back"
	case EventTileDropped:
		return "tile_dropped"
	case EventJumpWarning:
		return "jump_warning"
	case EventRandomJump:
		return "random_jump"
	case EventGameFinished:
		return "game_finished"
	default:
		return "unknown"
	}
}

// Event is a discrete state change reported to the presentation layer.
type Event struct {
	Kind      EventKind
	Direction Direction
	IDs       []int         // tiles involved, group order
	TargetID  int           // open tile or swap partner of a commit
	Duration  time.Duration // animation time hint
	Cue       bool          // an audible cue is due
	Remaining int           // warnings left before a jump
}
