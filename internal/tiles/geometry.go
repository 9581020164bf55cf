// Package tiles implements the sliding-tile puzzle: board arrangement,
// movement groups, drag tracking, and move commits.
//
// The package is pure game logic. It knows nothing about terminals, mice or
// timers; callers feed it positions, pointer displacements and elapsed time,
// and read back board state plus a queue of events.
package tiles

// Cell is a (row, column) coordinate on the logical grid.
// The logical grid is always row-major regardless of how it is displayed.
type Cell struct {
	Row    int
	Column int
}

// GridIndex maps a linear position to its grid cell.
func GridIndex(index, columns int) Cell {
	return Cell{Row: index / columns, Column: index % columns}
}

// Index maps a cell back to its linear position.
func (c Cell) Index(columns int) int {
	return c.Row*columns + c.Column
}

// ManhattanParity reports whether the Manhattan distance between two
// positions is odd. Random jumps only swap the open cell with a position
// at odd distance.
func ManhattanParity(a, b, columns int) bool {
	ca, cb := GridIndex(a, columns), GridIndex(b, columns)
	return (abs(ca.Row-cb.Row)+abs(ca.Column-cb.Column))%2 == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
