package game

import (
	"math/rand"

	"github.com/gonutz/sudoku"
)

// DigPolicy selects how the generator digs cells out of a full
// solution.
type DigPolicy int

const (
	// DigLogic keeps the puzzle solvable by forced moves alone, so
	// there is always a cell with exactly one candidate until the
	// board is full.
	DigLogic DigPolicy = iota
	// DigMinimal digs down to a givens target while the solution
	// stays unique.
	DigMinimal
)

// Generate builds a fresh 9x9 puzzle: a full random solution with
// cells dug out again by the given policy. It returns the board and a
// mask marking the remaining cells as givens.
func Generate(policy DigPolicy, givens int, rnd *rand.Rand) (*Board, []bool) {
	game := randomSolution(rnd)

	switch policy {
	case DigMinimal:
		digMinimal(&game, givens, rnd)
	default:
		digLogic(&game, rnd)
	}

	b := NewBoard(3)
	fixed := make([]bool, len(game))
	for i, v := range game {
		if v != 0 {
			b.cells[i] = v
			fixed[i] = true
		}
	}
	return b, fixed
}

// randomSolution shuffles the digits into a valid base pattern and
// then swaps random rows and columns within their bands, which keeps
// the grid valid.
func randomSolution(rnd *rand.Rand) sudoku.Game {
	n := [9]int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	for i := range n {
		j := i + rnd.Intn(9-i)
		n[i], n[j] = n[j], n[i]
	}

	game := sudoku.Game{
		n[0], n[1], n[2], n[3], n[4], n[5], n[6], n[7], n[8],
		n[6], n[7], n[8], n[0], n[1], n[2], n[3], n[4], n[5],
		n[3], n[4], n[5], n[6], n[7], n[8], n[0], n[1], n[2],
		n[8], n[0], n[1], n[2], n[3], n[4], n[5], n[6], n[7],
		n[5], n[6], n[7], n[8], n[0], n[1], n[2], n[3], n[4],
		n[2], n[3], n[4], n[5], n[6], n[7], n[8], n[0], n[1],
		n[7], n[8], n[0], n[1], n[2], n[3], n[4], n[5], n[6],
		n[4], n[5], n[6], n[7], n[8], n[0], n[1], n[2], n[3],
		n[1], n[2], n[3], n[4], n[5], n[6], n[7], n[8], n[0],
	}

	for i := 0; i < 1000; i++ {
		a := rnd.Intn(3) * 3
		b := rnd.Intn(3) + a
		if rnd.Intn(2) == 0 {
			swapRows(&game, a, b)
		} else {
			swapCols(&game, a, b)
		}
	}

	return game
}

func swapRows(g *sudoku.Game, a, b int) {
	if a != b {
		aa := a * 9
		bb := b * 9
		for i := 0; i < 9; i++ {
			g[aa+i], g[bb+i] = g[bb+i], g[aa+i]
		}
	}
}

func swapCols(g *sudoku.Game, a, b int) {
	if a != b {
		for i := 0; i < 9; i++ {
			g[a+i*9], g[b+i*9] = g[b+i*9], g[a+i*9]
		}
	}
}

// digMinimal clears random cells while the remaining puzzle still has
// a unique solution, stopping at the givens target.
func digMinimal(game *sudoku.Game, givens int, rnd *rand.Rand) {
	if givens < 17 {
		givens = 17
	}

	have := len(game)
	rest := make([]int, len(game))
	for i := range rest {
		rest[i] = i
	}

	for len(rest) > 0 && have > givens {
		n := rnd.Intn(len(rest))
		i := rest[n]
		was := game[i]
		game[i] = 0
		if sudoku.HasUniqueSolution(*game) {
			have--
		} else {
			game[i] = was
		}
		rest[0], rest[n] = rest[n], rest[0]
		rest = rest[1:]
	}
}

// digLogic clears as many cells as possible while the puzzle stays
// solvable by forced moves alone, visiting the cells in a
// random-start rotation.
func digLogic(game *sudoku.Game, rnd *rand.Rand) {
	start := rnd.Intn(len(game))
	for i := 0; i < len(game); i++ {
		j := (i + start) % len(game)
		was := game[j]
		if was == 0 {
			continue
		}
		game[j] = 0
		if !logicSolvable(game) {
			game[j] = was
		}
	}
}

// logicSolvable reports whether the puzzle can be completed by
// repeatedly filling cells that have exactly one candidate left.
func logicSolvable(game *sudoku.Game) bool {
	b := NewBoard(3)
	copy(b.cells, game[:])

	holes := 0
	for _, v := range b.cells {
		if v == 0 {
			holes++
		}
	}

	for holes > 0 {
		placed := false
		for row := 0; row < b.side; row++ {
			for col := 0; col < b.side; col++ {
				if b.At(col, row) != 0 {
					continue
				}
				cands := b.Candidates(col, row)
				if len(cands) == 0 {
					return false
				}
				if len(cands) == 1 {
					b.Place(col, row, cands[0])
					holes--
					placed = true
				}
			}
		}
		if !placed {
			return false
		}
	}
	return true
}
