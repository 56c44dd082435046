package sudoku

import "math/rand"

// Generate builds a complete, rule-valid grid by randomized backtracking.
// Candidates at each cell are tried in a fresh uniform permutation drawn from
// rng, so repeated calls yield different grids. A full grid always exists, so
// Generate never fails.
func Generate(rng *rand.Rand) Grid {
	var g Grid
	fill(&g, rng, 0, 0)
	return g
}

func fill(g *Grid, rng *rand.Rand, row, col int) bool {
	row, col, done := nextEmptyCell(g, row, col)
	if done {
		return true
	}

	for _, n := range rng.Perm(9) {
		num := n + 1
		if !CanPlace(g, row, col, num) {
			continue
		}
		g[row][col] = num
		if fill(g, rng, row, col) {
			return true
		}
		g[row][col] = 0 // backtracking
	}

	return false
}

func nextEmptyCell(g *Grid, row, col int) (r, c int, done bool) {
	for ; row < 9; row++ {
		for ; col < 9; col++ {
			if g[row][col] == 0 {
				return row, col, false
			}
		}
		col = 0
	}
	return 0, 0, true
}
