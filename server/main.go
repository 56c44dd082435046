package main

import (
	"flag"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hn770123/sudoku-b1/service/gamesvc"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	ttl := flag.Duration("session-ttl", gamesvc.DefaultTTL, "game session lifetime")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		gin.SetMode(gin.ReleaseMode)
	}

	e := gin.Default()
	v1 := e.Group("/api").
		Group("/v1")

	games := gamesvc.NewService(*ttl)
	handler := NewGameHandler(games)
	v1.POST("/games", handler.NewGame)
	v1.POST("/games/:id/check", handler.Check)
	v1.GET("/games/:id/solution", handler.Solution)
	v1.POST("/solve", handler.Solve)

	log.Info().Str("addr", *addr).Dur("session_ttl", *ttl).Msg("starting server")
	if err := e.Run(*addr); err != nil {
		log.Fatal().Err(err).Msg("run server")
	}
}
