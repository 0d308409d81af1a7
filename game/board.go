package game

// Coord identifies a cell on the board.
type Coord struct {
	Col, Row int
}

// Board is a square Sudoku grid with boxes of box x box cells and a
// side length of box*box. Cells hold a value in 1..Side(), 0 means
// empty.
//
// The board guarantees that no row, column or box ever contains a
// value twice. Place rejects anything that would break this, there is
// no other enforcement.
type Board struct {
	box   int
	side  int
	cells []int
}

// NewBoard returns an empty board for the given box size.
func NewBoard(box int) *Board {
	side := box * box
	return &Board{
		box:   box,
		side:  side,
		cells: make([]int, side*side),
	}
}

func (b *Board) Box() int  { return b.box }
func (b *Board) Side() int { return b.side }

func (b *Board) index(col, row int) int {
	return col + row*b.side
}

func (b *Board) coord(i int) Coord {
	return Coord{i % b.side, i / b.side}
}

// At returns the value at (col, row), 0 for an empty cell.
func (b *Board) At(col, row int) int {
	return b.cells[b.index(col, row)]
}

// IsFull reports whether every cell holds a value.
func (b *Board) IsFull() bool {
	for _, v := range b.cells {
		if v == 0 {
			return false
		}
	}
	return true
}

// RowCoords returns the coordinates of all cells in a row.
func (b *Board) RowCoords(row int) []Coord {
	cs := make([]Coord, b.side)
	for col := 0; col < b.side; col++ {
		cs[col] = Coord{col, row}
	}
	return cs
}

// ColCoords returns the coordinates of all cells in a column.
func (b *Board) ColCoords(col int) []Coord {
	cs := make([]Coord, b.side)
	for row := 0; row < b.side; row++ {
		cs[row] = Coord{col, row}
	}
	return cs
}

// BoxCoords returns the coordinates of all cells in the box that
// contains (col, row).
func (b *Board) BoxCoords(col, row int) []Coord {
	startCol := col / b.box * b.box
	startRow := row / b.box * b.box
	cs := make([]Coord, 0, b.side)
	for r := startRow; r < startRow+b.box; r++ {
		for c := startCol; c < startCol+b.box; c++ {
			cs = append(cs, Coord{c, r})
		}
	}
	return cs
}

// Conflict returns the first cell that blocks placing v at (col, row),
// scanning the cell's row, then its column, then its box. The cell
// itself never blocks, a placement replaces its current value.
func (b *Board) Conflict(col, row, v int) (Coord, bool) {
	if c, ok := b.groupConflict(b.RowCoords(row), col, row, v); ok {
		return c, true
	}
	if c, ok := b.groupConflict(b.ColCoords(col), col, row, v); ok {
		return c, true
	}
	return b.groupConflict(b.BoxCoords(col, row), col, row, v)
}

func (b *Board) groupConflict(cells []Coord, col, row, v int) (Coord, bool) {
	for _, c := range cells {
		if c.Col == col && c.Row == row {
			continue
		}
		if b.At(c.Col, c.Row) == v {
			return c, true
		}
	}
	return Coord{}, false
}

// CanPlace reports whether v is a legal value for (col, row). The
// cell's own current value is ignored.
func (b *Board) CanPlace(col, row, v int) bool {
	if v < 1 || v > b.side {
		return false
	}
	_, blocked := b.Conflict(col, row, v)
	return !blocked
}

// Place sets (col, row) to v. It fails and leaves the board unchanged
// if v already appears in the cell's row, column or box.
func (b *Board) Place(col, row, v int) bool {
	if !b.CanPlace(col, row, v) {
		return false
	}
	b.cells[b.index(col, row)] = v
	return true
}

// Remove clears (col, row). Removing an empty cell is a no-op.
func (b *Board) Remove(col, row int) {
	b.cells[b.index(col, row)] = 0
}

// Candidates returns the values that could legally go into (col, row),
// ignoring the cell's own current value.
func (b *Board) Candidates(col, row int) []int {
	var vs []int
	for v := 1; v <= b.side; v++ {
		if b.CanPlace(col, row, v) {
			vs = append(vs, v)
		}
	}
	return vs
}
