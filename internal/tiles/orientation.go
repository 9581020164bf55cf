package tiles

// Layout maps the row-major logical grid to the grid shown on screen.
//
// A landscape layout turns the board a quarter turn counter-clockwise so a
// tall board fits a wide screen: logical rows become display columns.
// Resolve and Commit never see display coordinates.
type Layout struct {
	Rows      int
	Columns   int
	Landscape bool
}

// DisplaySize returns the number of display rows and columns.
func (l Layout) DisplaySize() (rows, columns int) {
	if l.Landscape {
		return l.Columns, l.Rows
	}
	return l.Rows, l.Columns
}

// ToDisplay returns the display cell for a logical position.
func (l Layout) ToDisplay(position int) Cell {
	c := GridIndex(position, l.Columns)
	if !l.Landscape {
		return c
	}
	return Cell{Row: l.Columns - c.Column - 1, Column: c.Row}
}

// FromDisplay returns the logical position shown at a display cell.
func (l Layout) FromDisplay(c Cell) (int, bool) {
	rows, cols := l.DisplaySize()
	if c.Row < 0 || c.Row >= rows || c.Column < 0 || c.Column >= cols {
		return 0, false
	}
	if !l.Landscape {
		return c.Index(l.Columns), true
	}
	return Cell{Row: c.Column, Column: l.Columns - c.Row - 1}.Index(l.Columns), true
}

// Label returns the number printed on a tile. Landscape boards renumber
// tiles so the solved board still reads left to right, top to bottom.
func (l Layout) Label(id int) int {
	if !l.Landscape {
		return id
	}
	home := GridIndex(id-1, l.Columns)
	return l.Rows*(l.Columns-home.Column-1) + home.Row + 1
}
