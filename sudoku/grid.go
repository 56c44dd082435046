package sudoku

import "strings"

// Grid is a 9x9 Sudoku board. Zero means the cell is empty.
// It is a value type: assigning a Grid copies all 81 cells.
type Grid [9][9]int

// CellCount is the number of cells in a Grid.
const CellCount = 81

// FilledCount reports how many cells hold a digit.
func (g *Grid) FilledCount() int {
	n := 0
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if g[row][col] != 0 {
				n++
			}
		}
	}
	return n
}

// String renders the grid as nine lines of digits, empty cells as dots.
func (g *Grid) String() string {
	var sb strings.Builder
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			if g[row][col] == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(byte('0' + g[row][col]))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
