package gamesvc

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	mrand "math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hn770123/sudoku-b1/sudoku"
)

var (
	ErrGameNotFound = errors.New("game not found")
)

// DefaultTTL is how long an untouched session survives before it is pruned.
const DefaultTTL = 24 * time.Hour

type session struct {
	solution  sudoku.Grid
	puzzle    sudoku.Grid
	removed   int
	createdAt time.Time
}

// Service is the in-memory GameService implementation. Sessions live for ttl
// and are swept lazily on the next NewGame call.
type Service struct {
	mu    sync.RWMutex
	games map[string]*session
	ttl   time.Duration
}

func NewService(ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		games: make(map[string]*session),
		ttl:   ttl,
	}
}

func (s *Service) NewGame(_ context.Context, req *NewGameRequest) (*NewGameResponse, error) {
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := mrand.New(mrand.NewSource(seed))

	log.Debug().Int64("seed", seed).Msg("generating solution")
	solution := sudoku.Generate(rng)

	log.Debug().Msg("carving puzzle")
	puzzle, difficulty := sudoku.Carve(rng, solution)
	removed := sudoku.CellCount - puzzle.FilledCount()

	id, err := newID()
	if err != nil {
		return nil, fmt.Errorf("generate game ID: %w", err)
	}

	s.mu.Lock()
	s.sweepLocked()
	s.games[id] = &session{
		solution:  solution,
		puzzle:    puzzle,
		removed:   removed,
		createdAt: time.Now(),
	}
	s.mu.Unlock()

	log.Info().
		Str("game", id).
		Stringer("difficulty", difficulty).
		Int("removed", removed).
		Msg("new game")

	return &NewGameResponse{
		ID:         id,
		Puzzle:     puzzle,
		Difficulty: difficulty,
		Removed:    removed,
	}, nil
}

func (s *Service) Check(_ context.Context, req *CheckRequest) (*CheckResponse, error) {
	s.mu.RLock()
	game, ok := s.games[req.GameID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrGameNotFound
	}

	correct := make(map[[2]int]bool)
	resp := &CheckResponse{Results: make([]CellVerdict, 0, len(req.Cells))}
	for _, cell := range req.Cells {
		if cell.Row < 0 || cell.Row > 8 || cell.Col < 0 || cell.Col > 8 {
			return nil, fmt.Errorf("cell (%d,%d) out of range", cell.Row, cell.Col)
		}
		if cell.Value < 0 || cell.Value > 9 {
			return nil, fmt.Errorf("value %d at (%d,%d) out of range", cell.Value, cell.Row, cell.Col)
		}

		verdict := CellVerdict{Row: cell.Row, Col: cell.Col}
		switch cell.Value {
		case 0:
			verdict.Result = CellUnfilled
		case game.solution[cell.Row][cell.Col]:
			verdict.Result = CellCorrect
			if game.puzzle[cell.Row][cell.Col] == 0 {
				correct[[2]int{cell.Row, cell.Col}] = true
			}
		default:
			verdict.Result = CellIncorrect
		}
		resp.Results = append(resp.Results, verdict)
	}

	// Solved when every carved cell has been answered correctly.
	resp.Solved = len(correct) == game.removed
	return resp, nil
}

func (s *Service) Reveal(_ context.Context, req *RevealRequest) (*RevealResponse, error) {
	s.mu.RLock()
	game, ok := s.games[req.GameID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrGameNotFound
	}
	return &RevealResponse{Solution: game.solution}, nil
}

// sweepLocked drops expired sessions. Callers hold s.mu.
func (s *Service) sweepLocked() {
	cutoff := time.Now().Add(-s.ttl)
	for id, game := range s.games {
		if game.createdAt.Before(cutoff) {
			delete(s.games, id)
		}
	}
}

func newID() (string, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf[:]), nil
}
