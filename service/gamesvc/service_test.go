package gamesvc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hn770123/sudoku-b1/sudoku"
)

func newTestGame(t *testing.T, svc *Service, seed int64) (*NewGameResponse, sudoku.Grid) {
	t.Helper()
	ctx := context.Background()
	game, err := svc.NewGame(ctx, &NewGameRequest{Seed: seed})
	if err != nil {
		t.Fatalf("NewGame() error: %v", err)
	}
	rev, err := svc.Reveal(ctx, &RevealRequest{GameID: game.ID})
	if err != nil {
		t.Fatalf("Reveal() error: %v", err)
	}
	return game, rev.Solution
}

func TestNewGame(t *testing.T) {
	svc := NewService(0)
	game, solution := newTestGame(t, svc, 11)

	if !sudoku.Validate(&solution) {
		t.Fatal("revealed solution is not a valid complete grid")
	}
	if game.Removed < sudoku.MinRemoved || game.Removed > sudoku.MaxRemoved {
		t.Errorf("removed %d cells, want %d..%d", game.Removed, sudoku.MinRemoved, sudoku.MaxRemoved)
	}
	empty := sudoku.CellCount - game.Puzzle.FilledCount()
	if empty != game.Removed {
		t.Errorf("puzzle has %d empty cells, response says %d removed", empty, game.Removed)
	}
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if v := game.Puzzle[row][col]; v != 0 && v != solution[row][col] {
				t.Errorf("puzzle cell (%d,%d) = %d, solution has %d", row, col, v, solution[row][col])
			}
		}
	}
}

func TestCheck(t *testing.T) {
	svc := NewService(0)
	game, solution := newTestGame(t, svc, 23)

	// first carved cell in row-major order
	var row, col int
found:
	for row = 0; row < 9; row++ {
		for col = 0; col < 9; col++ {
			if game.Puzzle[row][col] == 0 {
				break found
			}
		}
	}
	right := solution[row][col]
	wrong := right%9 + 1

	tests := []struct {
		name  string
		value int
		want  CellResult
	}{
		{name: "correct digit", value: right, want: CellCorrect},
		{name: "incorrect digit", value: wrong, want: CellIncorrect},
		{name: "unfilled", value: 0, want: CellUnfilled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Check(context.Background(), &CheckRequest{
				GameID: game.ID,
				Cells:  []CellEntry{{Row: row, Col: col, Value: tt.value}},
			})
			if err != nil {
				t.Fatalf("Check() error: %v", err)
			}
			if len(resp.Results) != 1 || resp.Results[0].Result != tt.want {
				t.Errorf("Check() = %+v, want %v", resp.Results, tt.want)
			}
		})
	}
}

func TestCheckSolved(t *testing.T) {
	svc := NewService(0)
	game, solution := newTestGame(t, svc, 31)

	var cells []CellEntry
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			if game.Puzzle[row][col] == 0 {
				cells = append(cells, CellEntry{Row: row, Col: col, Value: solution[row][col]})
			}
		}
	}
	resp, err := svc.Check(context.Background(), &CheckRequest{GameID: game.ID, Cells: cells})
	if err != nil {
		t.Fatalf("Check() error: %v", err)
	}
	if !resp.Solved {
		t.Error("all carved cells answered correctly, want Solved = true")
	}
	for _, r := range resp.Results {
		if r.Result != CellCorrect {
			t.Errorf("cell (%d,%d) = %v, want %v", r.Row, r.Col, r.Result, CellCorrect)
		}
	}
}

func TestCheckErrors(t *testing.T) {
	svc := NewService(0)
	game, _ := newTestGame(t, svc, 47)

	if _, err := svc.Check(context.Background(), &CheckRequest{GameID: "missing"}); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("Check(unknown game) error = %v, want ErrGameNotFound", err)
	}

	bad := []CellEntry{{Row: 9, Col: 0, Value: 1}}
	if _, err := svc.Check(context.Background(), &CheckRequest{GameID: game.ID, Cells: bad}); err == nil {
		t.Error("Check(out-of-range cell) error = nil, want error")
	}
	bad = []CellEntry{{Row: 0, Col: 0, Value: 10}}
	if _, err := svc.Check(context.Background(), &CheckRequest{GameID: game.ID, Cells: bad}); err == nil {
		t.Error("Check(out-of-range value) error = nil, want error")
	}
}

func TestSessionExpiry(t *testing.T) {
	svc := NewService(time.Nanosecond)
	game, _ := newTestGame(t, svc, 61)

	time.Sleep(time.Millisecond)
	if _, err := svc.NewGame(context.Background(), &NewGameRequest{Seed: 62}); err != nil {
		t.Fatalf("NewGame() error: %v", err)
	}

	_, err := svc.Reveal(context.Background(), &RevealRequest{GameID: game.ID})
	if !errors.Is(err, ErrGameNotFound) {
		t.Errorf("Reveal(expired game) error = %v, want ErrGameNotFound", err)
	}
}
