package gamesvc

import (
	"context"

	"github.com/hn770123/sudoku-b1/sudoku"
)

// GameService owns puzzle sessions: it runs the generate/carve pipeline and
// keeps each solution grid for later validation of user input.
type GameService interface {
	// NewGame generates a fresh puzzle and returns it with its session ID.
	NewGame(ctx context.Context, req *NewGameRequest) (*NewGameResponse, error)
	// Check compares entered digits against the session's solution.
	Check(ctx context.Context, req *CheckRequest) (*CheckResponse, error)
	// Reveal returns the session's full solution grid.
	Reveal(ctx context.Context, req *RevealRequest) (*RevealResponse, error)
}

type NewGameRequest struct {
	// Seed for the random source; 0 means derive one from the clock.
	Seed int64 `json:"seed,omitempty"`
}

type NewGameResponse struct {
	ID         string            `json:"id"`
	Puzzle     sudoku.Grid       `json:"puzzle"`
	Difficulty sudoku.Difficulty `json:"difficulty"`
	Removed    int               `json:"removed"`
}

// CellEntry is one user-entered digit; Value 0 means the cell is unfilled.
type CellEntry struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Value int `json:"value"`
}

// CellResult classifies a checked cell.
type CellResult string

const (
	CellCorrect   CellResult = "correct"
	CellIncorrect CellResult = "incorrect"
	CellUnfilled  CellResult = "unfilled"
)

type CellVerdict struct {
	Row    int        `json:"row"`
	Col    int        `json:"col"`
	Result CellResult `json:"result"`
}

type CheckRequest struct {
	GameID string      `json:"-"`
	Cells  []CellEntry `json:"cells"`
}

type CheckResponse struct {
	Results []CellVerdict `json:"results"`
	Solved  bool          `json:"solved"`
}

type RevealRequest struct {
	GameID string `json:"-"`
}

type RevealResponse struct {
	Solution sudoku.Grid `json:"solution"`
}
