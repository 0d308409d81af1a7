package game

import "math/rand"

// Tag classifies a cell for hint coloring.
type Tag int

const (
	TagEmpty Tag = iota
	TagUncertain
	TagCertain
)

// Game holds the whole game state: the board, which cells are givens,
// the hint classification of every cell, the digit selected for
// placement and the tile that blocked the last rejected placement.
type Game struct {
	board    *Board
	fixed    []bool
	tags     []Tag
	selected int
	blocking int // cell index, -1 when nothing blocks

	box    int
	policy DigPolicy
	givens int
	rand   *rand.Rand
}

// New starts a game on a freshly generated 9x9 puzzle.
func New(policy DigPolicy, givens int, rnd *rand.Rand) *Game {
	g := &Game{box: 3, policy: policy, givens: givens, rand: rnd}
	g.Reset()
	return g
}

// NewEmpty starts a game on an empty board of the given box size. The
// generator only covers box size 3, other sizes always start empty.
func NewEmpty(box int) *Game {
	g := &Game{box: box}
	g.Reset()
	return g
}

// Reset replaces the board with a fresh puzzle.
func (g *Game) Reset() {
	if g.rand != nil {
		g.board, g.fixed = Generate(g.policy, g.givens, g.rand)
	} else {
		g.board = NewBoard(g.box)
		g.fixed = make([]bool, g.board.Side()*g.board.Side())
	}
	g.tags = make([]Tag, len(g.fixed))
	g.blocking = -1
	g.reclassify()
}

// Board exposes the underlying grid, mainly for rendering.
func (g *Game) Board() *Board { return g.board }

// Select makes v the active placement digit. Values outside 1..Side
// clear the selection.
func (g *Game) Select(v int) {
	if v < 1 || v > g.board.Side() {
		v = 0
	}
	g.selected = v
}

// Selected returns the active placement digit, 0 for none.
func (g *Game) Selected() int { return g.selected }

func (g *Game) Value(col, row int) int { return g.board.At(col, row) }

func (g *Game) Tag(col, row int) Tag { return g.tags[g.board.index(col, row)] }

// Fixed reports whether (col, row) is a given of the current puzzle.
func (g *Game) Fixed(col, row int) bool { return g.fixed[g.board.index(col, row)] }

// Blocking returns the tile that blocked the last rejected placement.
// It is cleared by the next successful mutation.
func (g *Game) Blocking() (Coord, bool) {
	if g.blocking < 0 {
		return Coord{}, false
	}
	return g.board.coord(g.blocking), true
}

// Place puts the selected digit at (col, row). Givens and Certain
// tiles are never overwritten. An illegal value is rejected, the board
// stays unchanged and the blocking tile is remembered for rendering.
func (g *Game) Place(col, row int) bool {
	if g.selected == 0 {
		return false
	}
	i := g.board.index(col, row)
	if g.fixed[i] || g.tags[i] == TagCertain {
		return false
	}
	if c, blocked := g.board.Conflict(col, row, g.selected); blocked {
		g.blocking = g.board.index(c.Col, c.Row)
		return false
	}
	g.board.Place(col, row, g.selected)
	g.afterMutation()
	return true
}

// Remove clears (col, row) if it holds an Uncertain value. Givens and
// Certain tiles stay. This is game policy, the board itself allows
// removing anything.
func (g *Game) Remove(col, row int) bool {
	i := g.board.index(col, row)
	if g.fixed[i] || g.tags[i] != TagUncertain {
		return false
	}
	g.board.Remove(col, row)
	g.afterMutation()
	return true
}

// AutoPlace makes one legal placement for the player: the first cell
// in index order that has exactly one candidate, or failing that the
// lowest legal value in the first empty cell that has any. It reports
// false when no empty cell can take a value.
func (g *Game) AutoPlace() bool {
	side := g.board.Side()
	fallback := -1
	fallbackValue := 0
	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			if g.board.At(col, row) != 0 {
				continue
			}
			cands := g.board.Candidates(col, row)
			if len(cands) == 1 {
				g.board.Place(col, row, cands[0])
				g.afterMutation()
				return true
			}
			if fallback < 0 && len(cands) > 0 {
				fallback = g.board.index(col, row)
				fallbackValue = cands[0]
			}
		}
	}
	if fallback < 0 {
		return false
	}
	c := g.board.coord(fallback)
	g.board.Place(c.Col, c.Row, fallbackValue)
	g.afterMutation()
	return true
}

func (g *Game) afterMutation() {
	g.blocking = -1
	g.reclassify()
	if g.board.IsFull() {
		g.Reset()
	}
}

// reclassify recomputes every tag from scratch. Each filled cell is
// judged independently against the current grid, givens are always
// Certain. The test only looks at the cell's own row, column and box.
// A constraint-propagation or backtracking check could prove more
// cells Certain, but that would change the coloring, so it stays a
// local test.
func (g *Game) reclassify() {
	side := g.board.Side()
	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			i := g.board.index(col, row)
			switch {
			case g.fixed[i]:
				g.tags[i] = TagCertain
			case g.board.At(col, row) == 0:
				g.tags[i] = TagEmpty
			case g.certain(col, row):
				g.tags[i] = TagCertain
			default:
				g.tags[i] = TagUncertain
			}
		}
	}
}

// certain reports whether the value at (col, row) is pinned by the
// current constraints: either no other value fits this cell, or the
// value fits nowhere else in the cell's row, column or box.
func (g *Game) certain(col, row int) bool {
	b := g.board
	v := b.At(col, row)

	// Cell-forced: v is the only value legal here.
	if cands := b.Candidates(col, row); len(cands) == 1 && cands[0] == v {
		return true
	}

	// Value-forced: with this cell cleared, v has nowhere else to go
	// in one of its groups.
	i := b.index(col, row)
	b.cells[i] = 0
	defer func() { b.cells[i] = v }()

	groups := [3][]Coord{
		b.RowCoords(row),
		b.ColCoords(col),
		b.BoxCoords(col, row),
	}
	for _, cells := range groups {
		if g.nowhereElse(col, row, v, cells) {
			return true
		}
	}
	return false
}

// nowhereElse reports that no empty cell in the group, other than
// (col, row) itself, could legally hold v.
func (g *Game) nowhereElse(col, row, v int, cells []Coord) bool {
	for _, c := range cells {
		if c.Col == col && c.Row == row {
			continue
		}
		if g.board.At(c.Col, c.Row) != 0 {
			continue
		}
		if g.board.CanPlace(c.Col, c.Row, v) {
			return false
		}
	}
	return true
}
