package sudoku

import (
	"encoding/json"
	"fmt"
	"math/rand"
)

// Difficulty is a coarse label derived from how many cells were carved out of
// the solution, not from any structural analysis of the resulting puzzle.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// MarshalJSON encodes the difficulty as its lowercase label.
func (d Difficulty) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decodes a lowercase difficulty label.
func (d *Difficulty) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}
	switch label {
	case "easy":
		*d = Easy
	case "medium":
		*d = Medium
	case "hard":
		*d = Hard
	default:
		return fmt.Errorf("unknown difficulty %q", label)
	}
	return nil
}

// Removal counts carved per puzzle and the thresholds that label them.
const (
	MinRemoved = 40
	MaxRemoved = 60

	mediumThreshold = 45
	hardThreshold   = 52
)

// classify maps a removal count to its difficulty tier.
func classify(removed int) Difficulty {
	switch {
	case removed < mediumThreshold:
		return Easy
	case removed < hardThreshold:
		return Medium
	default:
		return Hard
	}
}

// Carve copies the solution, zeroes a random selection of cells, and labels
// the result. The removal count is drawn uniformly from [MinRemoved,
// MaxRemoved] and the cells are the first entries of a uniform permutation of
// all 81 indices. The solution passed in is never modified.
func Carve(rng *rand.Rand, solution Grid) (Grid, Difficulty) {
	puzzle := solution

	removed := MinRemoved + rng.Intn(MaxRemoved-MinRemoved+1)
	for _, idx := range rng.Perm(CellCount)[:removed] {
		puzzle[idx/9][idx%9] = 0
	}

	return puzzle, classify(removed)
}
