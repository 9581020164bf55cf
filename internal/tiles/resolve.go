package tiles

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// MovementGroup is the ordered run of tiles that move together in one slide.
//
// The tile nearest the open cell comes first and the touched tile is always
// last. A drag group holds exactly the picked-up tile.
type MovementGroup struct {
	Direction Direction
	IDs       []int
}

// Empty reports whether the group moves nothing.
func (g MovementGroup) Empty() bool {
	return len(g.IDs) == 0 || g.Direction == DirNone
}

// Touched returns the id of the tile the interaction started on.
func (g MovementGroup) Touched() (int, bool) {
	if len(g.IDs) == 0 {
		return 0, false
	}
	return g.IDs[len(g.IDs)-1], true
}

// Contains reports whether the tile id takes part in the group.
func (g MovementGroup) Contains(id int) bool {
	return lo.Contains(g.IDs, id)
}

// Positions locates each group member on the board, in group order.
func (g MovementGroup) Positions(b *Board) ([]int, error) {
	positions := make([]int, 0, len(g.IDs))
	for _, id := range g.IDs {
		p, ok := b.PositionOf(id)
		if !ok {
			return nil, fmt.Errorf("%w: tile %d not on board", ErrStaleGroup, id)
		}
		positions = append(positions, p)
	}
	return positions, nil
}

// Equal reports whether two groups describe the same move.
func (g MovementGroup) Equal(o MovementGroup) bool {
	return g.Direction == o.Direction && slices.Equal(g.IDs, o.IDs)
}

// Resolve computes the movement group started by touching a position.
//
// In classic mode the touched tile must share a row or column with the open
// cell; anything else, including the open cell itself or an out-of-range
// position, yields an empty DirNone group. In swap mode every tile is picked
// up on its own as a DirDrag group.
func Resolve(b *Board, touched int) (MovementGroup, error) {
	if touched < 0 || touched >= b.Size() {
		return MovementGroup{Direction: DirNone}, nil
	}

	if b.mode == ModeSwap {
		return MovementGroup{Direction: DirDrag, IDs: []int{b.cells[touched]}}, nil
	}

	open, ok := b.OpenPosition()
	if !ok {
		return MovementGroup{}, fmt.Errorf("%w: open tile %d missing", ErrCorruptBoard, b.openID)
	}
	if touched == open {
		return MovementGroup{Direction: DirNone}, nil
	}

	space, tile := GridIndex(open, b.columns), GridIndex(touched, b.columns)
	var (
		dir       Direction
		positions []int
	)
	switch {
	case space.Column == tile.Column && space.Row < tile.Row:
		dir = DirUp
		for p := open + b.columns; p <= touched; p += b.columns {
			positions = append(positions, p)
		}
	case space.Column == tile.Column && space.Row > tile.Row:
		dir = DirDown
		for p := open - b.columns; p >= touched; p -= b.columns {
			positions = append(positions, p)
		}
	case space.Row == tile.Row && space.Column < tile.Column:
		dir = DirLeft
		for p := open + 1; p <= touched; p++ {
			positions = append(positions, p)
		}
	case space.Row == tile.Row && space.Column > tile.Column:
		dir = DirRight
		for p := open - 1; p >= touched; p-- {
			positions = append(positions, p)
		}
	default:
		return MovementGroup{Direction: DirNone}, nil
	}

	return MovementGroup{
		Direction: dir,
		IDs: lo.Map(positions, func(p int, _ int) int {
			return b.cells[p]
		}),
	}, nil
}
