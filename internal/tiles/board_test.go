package tiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardWith builds a board with an explicit arrangement.
func boardWith(t *testing.T, rows, columns int, mode Mode, ids ...int) *Board {
	t.Helper()
	b, err := NewBoard(rows, columns, mode)
	require.NoError(t, err)
	require.Len(t, ids, rows*columns)
	copy(b.cells, ids)
	require.NoError(t, b.Validate())
	return b
}

func TestNewBoardRejectsTinyGrids(t *testing.T) {
	tests := []struct {
		rows, columns int
	}{
		{0, 3},
		{3, 0},
		{1, 1},
		{-2, 4},
	}

	for _, tc := range tests {
		_, err := NewBoard(tc.rows, tc.columns, ModeClassic)
		assert.ErrorIs(t, err, ErrInvalidSize, "%dx%d", tc.rows, tc.columns)
	}
}

func TestNewBoardIsSolved(t *testing.T) {
	b, err := NewBoard(3, 3, ModeClassic)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, b.IDs())
	assert.True(t, b.IsFinished())
	assert.Equal(t, 9, b.MatchedCount())

	open, ok := b.OpenID()
	assert.True(t, ok)
	assert.Equal(t, 9, open)

	pos, ok := b.OpenPosition()
	assert.True(t, ok)
	assert.Equal(t, 8, pos)
}

func TestSwapBoardHasNoOpenTile(t *testing.T) {
	b, err := NewBoard(2, 3, ModeSwap)
	require.NoError(t, err)

	_, ok := b.OpenID()
	assert.False(t, ok)
	_, ok = b.OpenPosition()
	assert.False(t, ok)
}

func TestBoardLookups(t *testing.T) {
	b := boardWith(t, 2, 2, ModeClassic, 3, 1, 4, 2)

	id, ok := b.TileAt(2)
	assert.True(t, ok)
	assert.Equal(t, 4, id)

	_, ok = b.TileAt(4)
	assert.False(t, ok)
	_, ok = b.TileAt(-1)
	assert.False(t, ok)

	pos, ok := b.PositionOf(1)
	assert.True(t, ok)
	assert.Equal(t, 1, pos)

	_, ok = b.PositionOf(7)
	assert.False(t, ok)

	assert.False(t, b.IsFinished())
	assert.Equal(t, 0, b.MatchedCount())
}

func TestIsMatched(t *testing.T) {
	assert.True(t, IsMatched(1, 0))
	assert.True(t, IsMatched(9, 8))
	assert.False(t, IsMatched(9, 0))
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b, err := NewBoard(3, 3, ModeClassic)
	require.NoError(t, err)

	c := b.Clone()
	require.True(t, b.Equal(c))

	c.swap(0, 1)
	assert.False(t, b.Equal(c))
	assert.Equal(t, 1, b.cells[0])
}

func TestBoardValidate(t *testing.T) {
	b, err := NewBoard(2, 2, ModeClassic)
	require.NoError(t, err)

	b.cells[0] = 2
	assert.ErrorIs(t, b.Validate(), ErrCorruptBoard)

	b.cells[0] = 5
	assert.ErrorIs(t, b.Validate(), ErrCorruptBoard)
}

func TestApplyRotationShiftsRunTowardHole(t *testing.T) {
	// Hole (id 4) at position 0 of a 1x4 row; run 1,2,3 slides left.
	b := boardWith(t, 1, 4, ModeClassic, 4, 1, 2, 3)

	b.applyRotation([]int{1, 2, 3}, 0)
	assert.Equal(t, []int{1, 2, 3, 4}, b.IDs())
}

func TestBoardElapsed(t *testing.T) {
	b, err := NewBoard(2, 2, ModeClassic)
	require.NoError(t, err)

	b.AddElapsed(1500)
	b.AddElapsed(-10)
	assert.EqualValues(t, 1500, b.Elapsed())
}
