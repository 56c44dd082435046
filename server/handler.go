package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hn770123/sudoku-b1/service/gamesvc"
	"github.com/hn770123/sudoku-b1/sudoku"
)

type GameHandler struct {
	games gamesvc.GameService
}

func NewGameHandler(games gamesvc.GameService) *GameHandler {
	return &GameHandler{games: games}
}

func (h *GameHandler) NewGame(c *gin.Context) {
	var req gamesvc.NewGameRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Err(err).Msg("bind new game request")
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
			return
		}
	}

	resp, err := h.games.NewGame(c, &req)
	if err != nil {
		log.Err(err).Msg("create game")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GameHandler) Check(c *gin.Context) {
	var req gamesvc.CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Err(err).Msg("bind check request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}
	req.GameID = c.Param("id")

	resp, err := h.games.Check(c, &req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, gamesvc.ErrGameNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "Failed to check cells", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *GameHandler) Solution(c *gin.Context) {
	resp, err := h.games.Reveal(c, &gamesvc.RevealRequest{GameID: c.Param("id")})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, gamesvc.ErrGameNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": "Failed to reveal solution", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

type solveRequest struct {
	Puzzle sudoku.Grid `json:"puzzle"`
}

// Solve completes an arbitrary posted grid without creating a session.
func (h *GameHandler) Solve(c *gin.Context) {
	var req solveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Err(err).Msg("bind solve request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	grid := req.Puzzle
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			v := grid[row][col]
			if v == 0 {
				continue
			}
			if v < 1 || v > 9 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cell values must be 0..9"})
				return
			}
			grid[row][col] = 0
			ok := sudoku.CanPlace(&grid, row, col, v)
			grid[row][col] = v
			if !ok {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Puzzle givens conflict"})
				return
			}
		}
	}
	if !sudoku.Solve(&grid) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Puzzle has no solution"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"solution": grid})
}
