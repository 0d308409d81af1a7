package game

import (
	"math/rand"
	"testing"

	"github.com/gonutz/sudoku"
)

func assertValid(t *testing.T, b *Board) {
	t.Helper()
	check := func(cells []Coord, what string) {
		seen := make(map[int]Coord)
		for _, c := range cells {
			v := b.At(c.Col, c.Row)
			if v == 0 {
				continue
			}
			if prev, ok := seen[v]; ok {
				t.Fatalf("%s holds %d at both %v and %v", what, v, prev, c)
			}
			seen[v] = c
		}
	}
	for i := 0; i < b.Side(); i++ {
		check(b.RowCoords(i), "row")
		check(b.ColCoords(i), "column")
	}
	for row := 0; row < b.Side(); row += b.Box() {
		for col := 0; col < b.Side(); col += b.Box() {
			check(b.BoxCoords(col, row), "box")
		}
	}
}

func countFilled(b *Board) int {
	n := 0
	for row := 0; row < b.Side(); row++ {
		for col := 0; col < b.Side(); col++ {
			if b.At(col, row) != 0 {
				n++
			}
		}
	}
	return n
}

func toPuzzle(b *Board) sudoku.Game {
	var g sudoku.Game
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			g[col+9*row] = b.At(col, row)
		}
	}
	return g
}

func TestRandomSolutionIsComplete(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	game := randomSolution(rnd)

	b := NewBoard(3)
	for i, v := range game {
		if !b.Place(i%9, i/9, v) {
			t.Fatalf("solution has an illegal %d at index %d", v, i)
		}
	}
	if !b.IsFull() {
		t.Fatal("solution is not complete")
	}
}

func TestGenerateLogicPuzzle(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	b, fixed := Generate(DigLogic, 0, rnd)

	assertValid(t, b)

	filled := countFilled(b)
	if filled == 0 || filled == 81 {
		t.Fatalf("puzzle has %d givens", filled)
	}
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			want := b.At(col, row) != 0
			if fixed[col+9*row] != want {
				t.Fatalf("fixed mask wrong at (%d,%d)", col, row)
			}
		}
	}

	puzzle := toPuzzle(b)
	if !logicSolvable(&puzzle) {
		t.Fatal("puzzle cannot be finished by forced moves alone")
	}
}

func TestGenerateMinimalPuzzle(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	b, _ := Generate(DigMinimal, 30, rnd)

	assertValid(t, b)

	filled := countFilled(b)
	if filled < 30 || filled >= 81 {
		t.Fatalf("puzzle has %d givens, want at least the target of 30 and at least one hole", filled)
	}

	puzzle := toPuzzle(b)
	if !sudoku.HasUniqueSolution(puzzle) {
		t.Fatal("puzzle does not have a unique solution")
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a, _ := Generate(DigLogic, 0, rand.New(rand.NewSource(5)))
	b, _ := Generate(DigLogic, 0, rand.New(rand.NewSource(5)))
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if a.At(col, row) != b.At(col, row) {
				t.Fatalf("same seed produced different boards at (%d,%d)", col, row)
			}
		}
	}
}

// On a logic puzzle there is a forced move at every step, so repeated
// auto-placement finishes the board, which then resets to a new
// puzzle.
func TestAutoPlaceSolvesLogicPuzzle(t *testing.T) {
	rnd := rand.New(rand.NewSource(9))
	g := New(DigLogic, 30, rnd)

	holes := 81 - countFilled(g.Board())
	for i := 0; i < holes; i++ {
		if !g.AutoPlace() {
			t.Fatalf("stuck after %d of %d auto-placements on a logic puzzle", i, holes)
		}
	}

	assertValid(t, g.Board())
	if g.Board().IsFull() {
		t.Fatal("board not replaced after completion")
	}
	if countFilled(g.Board()) == 0 {
		t.Fatal("replacement board is not a seeded puzzle")
	}
}
