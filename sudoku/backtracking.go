package sudoku

// Solve fills the empty cells of g in place with a valid completion using
// deterministic backtracking (digits tried in ascending order). It reports
// whether a completion exists; on failure g is left unchanged.
func Solve(g *Grid) bool {
	return solve(g, 0, 0)
}

func solve(g *Grid, r, c int) bool {
	r, c, done := nextEmptyCell(g, r, c)
	if done {
		return true
	}

	for num := 1; num <= 9; num++ {
		if !CanPlace(g, r, c, num) {
			continue
		}
		g[r][c] = num
		if solve(g, r, c) {
			return true
		}
		g[r][c] = 0 // backtracking
	}

	return false
}
