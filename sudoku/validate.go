package sudoku

// CanPlace reports whether num may be placed at (row, col): the digit must not
// already appear in the same row, column, or 3x3 block. Pure function of the
// grid state; callers pass coordinates of an empty cell.
func CanPlace(g *Grid, row, col, num int) bool {
	for i := 0; i < 9; i++ {
		if g[row][i] == num ||
			g[i][col] == num ||
			g[row/3*3+i/3][col/3*3+i%3] == num {
			return false
		}
	}
	return true
}

// Validate reports whether g is a complete, rule-valid grid: all 81 cells
// filled and every row, column, and block a permutation of 1..9.
func Validate(g *Grid) bool {
	var rows, cols, blocks [9][9]bool
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			cell := g[row][col]
			if cell == 0 {
				return false
			}

			digit := cell - 1
			block := row/3*3 + col/3
			if rows[row][digit] || cols[col][digit] || blocks[block][digit] {
				return false
			}

			rows[row][digit], cols[col][digit], blocks[block][digit] = true, true, true
		}
	}
	return true
}
