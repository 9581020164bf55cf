package tiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveClassic(t *testing.T) {
	// 3x3 solved board: hole (id 9) at position 8.
	solved := func() *Board {
		b, err := NewBoard(3, 3, ModeClassic)
		require.NoError(t, err)
		return b
	}
	// Hole at position 0.
	holeFirst := func() *Board {
		return boardWith(t, 3, 3, ModeClassic, 9, 1, 2, 3, 4, 5, 6, 7, 8)
	}

	tests := []struct {
		name    string
		board   func() *Board
		touched int
		dir     Direction
		ids     []int
	}{
		{"down one", solved, 5, DirDown, []int{6}},
		{"down two", solved, 2, DirDown, []int{6, 3}},
		{"right one", solved, 7, DirRight, []int{8}},
		{"right two", solved, 6, DirRight, []int{8, 7}},
		{"left two", holeFirst, 2, DirLeft, []int{1, 2}},
		{"up two", holeFirst, 6, DirUp, []int{3, 6}},
		{"up one", holeFirst, 3, DirUp, []int{3}},
		{"hole itself", solved, 8, DirNone, nil},
		{"not aligned", solved, 0, DirNone, nil},
		{"out of range high", solved, 9, DirNone, nil},
		{"out of range low", solved, -1, DirNone, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Resolve(tc.board(), tc.touched)
			require.NoError(t, err)
			assert.Equal(t, tc.dir, g.Direction)
			if tc.ids == nil {
				assert.True(t, g.Empty())
				return
			}
			assert.Equal(t, tc.ids, g.IDs)
		})
	}
}

func TestResolveTouchedTileIsLast(t *testing.T) {
	b, err := NewBoard(4, 5, ModeClassic)
	require.NoError(t, err)
	require.NoError(t, ShuffleToStart(b, NewRand(11), 0))

	for p := 0; p < b.Size(); p++ {
		g, err := Resolve(b, p)
		require.NoError(t, err)
		if g.Empty() {
			continue
		}
		touched, ok := g.Touched()
		require.True(t, ok)
		id, _ := b.TileAt(p)
		assert.Equal(t, id, touched, "position %d", p)
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	b, err := NewBoard(5, 3, ModeClassic)
	require.NoError(t, err)
	require.NoError(t, ShuffleToStart(b, NewRand(3), 0))
	before := b.Clone()

	for p := 0; p < b.Size(); p++ {
		first, err := Resolve(b, p)
		require.NoError(t, err)
		second, err := Resolve(b, p)
		require.NoError(t, err)
		assert.True(t, first.Equal(second), "position %d", p)
	}
	assert.True(t, before.Equal(b), "resolve must not modify the board")
}

func TestResolveSwapModePicksUpSingleTile(t *testing.T) {
	b := boardWith(t, 2, 2, ModeSwap, 2, 1, 4, 3)

	g, err := Resolve(b, 2)
	require.NoError(t, err)
	assert.Equal(t, DirDrag, g.Direction)
	assert.Equal(t, []int{4}, g.IDs)
}

func TestResolveCorruptBoard(t *testing.T) {
	b, err := NewBoard(3, 3, ModeClassic)
	require.NoError(t, err)
	b.cells[8] = 1 // open tile 9 no longer on the board

	_, err = Resolve(b, 5)
	assert.ErrorIs(t, err, ErrCorruptBoard)
}

func TestMovementGroupHelpers(t *testing.T) {
	g := MovementGroup{Direction: DirLeft, IDs: []int{4, 7}}

	touched, ok := g.Touched()
	assert.True(t, ok)
	assert.Equal(t, 7, touched)
	assert.True(t, g.Contains(4))
	assert.False(t, g.Contains(5))
	assert.False(t, g.Empty())

	_, ok = MovementGroup{}.Touched()
	assert.False(t, ok)
}
