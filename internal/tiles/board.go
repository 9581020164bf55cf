package tiles

import (
	"fmt"
	"slices"
	"time"

	"github.com/samber/lo"
)

// Mode selects how tiles move.
type Mode int

const (
	// ModeClassic has one open cell that neighbouring runs slide into.
	ModeClassic Mode = iota
	// ModeSwap has no open cell; any two tiles may be exchanged.
	ModeSwap
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeSwap {
		return "swap"
	}
	return "classic"
}

// Board is the authoritative tile arrangement.
//
// Position i holds the id of the tile currently there. Ids are a permutation
// of 1..rows*columns. Tile id i+1 belongs at position i.
type Board struct {
	rows    int
	columns int
	mode    Mode
	cells   []int
	openID  int // 0 when there is no open cell

	moves   int
	elapsed time.Duration
}

// NewBoard creates a board in the solved arrangement. In classic mode the
// open cell is the last tile.
func NewBoard(rows, columns int, mode Mode) (*Board, error) {
	if rows < 1 || columns < 1 || rows*columns < 2 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, rows, columns)
	}

	b := &Board{
		rows:    rows,
		columns: columns,
		mode:    mode,
		cells:   make([]int, rows*columns),
	}
	if mode == ModeClassic {
		b.openID = rows * columns
	}
	b.reset()
	return b, nil
}

// reset restores the identity arrangement and clears the counters.
func (b *Board) reset() {
	for i := range b.cells {
		b.cells[i] = i + 1
	}
	b.moves = 0
	b.elapsed = 0
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Columns returns the number of columns.
func (b *Board) Columns() int { return b.columns }

// Mode returns the board mode.
func (b *Board) Mode() Mode { return b.mode }

// Size returns the number of cells.
func (b *Board) Size() int { return len(b.cells) }

// Moves returns the number of committed moves.
func (b *Board) Moves() int { return b.moves }

// Elapsed returns the accumulated play time.
func (b *Board) Elapsed() time.Duration { return b.elapsed }

// AddElapsed advances the play clock.
func (b *Board) AddElapsed(dt time.Duration) {
	if dt > 0 {
		b.elapsed += dt
	}
}

// OpenID returns the id of the open tile, if the board has one.
func (b *Board) OpenID() (int, bool) {
	return b.openID, b.openID != 0
}

// OpenPosition returns the current position of the open tile.
func (b *Board) OpenPosition() (int, bool) {
	if b.openID == 0 {
		return 0, false
	}
	return b.PositionOf(b.openID)
}

// TileAt returns the tile id at a position. Out-of-range positions are
// reported as not found.
func (b *Board) TileAt(position int) (int, bool) {
	if position < 0 || position >= len(b.cells) {
		return 0, false
	}
	return b.cells[position], true
}

// PositionOf returns the position holding the given tile id.
func (b *Board) PositionOf(id int) (int, bool) {
	i := lo.IndexOf(b.cells, id)
	return i, i >= 0
}

// IsMatched reports whether a tile id belongs at the given position.
func IsMatched(id, position int) bool {
	return id == position+1
}

// IsFinished reports whether every position holds its own tile.
func (b *Board) IsFinished() bool {
	for i, id := range b.cells {
		if !IsMatched(id, i) {
			return false
		}
	}
	return true
}

// MatchedCount returns how many positions hold their own tile.
func (b *Board) MatchedCount() int {
	return lo.CountBy(lo.Range(len(b.cells)), func(i int) bool {
		return IsMatched(b.cells[i], i)
	})
}

// IDs returns a copy of the arrangement in position order.
func (b *Board) IDs() []int {
	return slices.Clone(b.cells)
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	c.cells = slices.Clone(b.cells)
	return &c
}

// Equal reports whether two boards have the same shape, mode and arrangement.
// Counters are not compared.
func (b *Board) Equal(o *Board) bool {
	if b == nil || o == nil {
		return b == o
	}
	return b.rows == o.rows &&
		b.columns == o.columns &&
		b.mode == o.mode &&
		b.openID == o.openID &&
		slices.Equal(b.cells, o.cells)
}

// Validate checks that the ids form a permutation of 1..N and that the open
// tile, if any, is on the board.
func (b *Board) Validate() error {
	seen := make([]bool, len(b.cells)+1)
	for i, id := range b.cells {
		if id < 1 || id > len(b.cells) || seen[id] {
			return fmt.Errorf("%w: id %d at position %d", ErrCorruptBoard, id, i)
		}
		seen[id] = true
	}
	if b.openID < 0 || b.openID > len(b.cells) {
		return fmt.Errorf("%w: open id %d", ErrCorruptBoard, b.openID)
	}
	return nil
}

// swap exchanges the tiles at two positions.
func (b *Board) swap(i, j int) {
	b.cells[i], b.cells[j] = b.cells[j], b.cells[i]
}

// applyRotation walks the given positions in order, swapping each into the
// current target and advancing the target to the position just vacated.
// For a classic run this shifts every tile one slot toward the hole, which
// ends up at the last position.
func (b *Board) applyRotation(positions []int, target int) {
	for _, p := range positions {
		b.swap(target, p)
		target = p
	}
}
