package tiles

// Direction is the travel direction of a movement group.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
	DirDrag // free 2-D pick-up used by swap mode
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirDrag:
		return "drag"
	default:
		return "unknown"
	}
}

// Rotated maps a logical direction to the physical swipe direction when the
// board is displayed rotated a quarter turn for landscape.
func (d Direction) Rotated(landscape bool) Direction {
	if !landscape {
		return d
	}
	switch d {
	case DirUp:
		return DirLeft
	case DirDown:
		return DirRight
	case DirLeft:
		return DirDown
	case DirRight:
		return DirUp
	default:
		return d
	}
}

// axial reports whether the direction slides along a single axis.
func (d Direction) axial() bool {
	return d == DirUp || d == DirDown || d == DirLeft || d == DirRight
}
