// main.go
//
// Entry point of the chess HTTP server.
// Loads configuration, opens the database (accounts and results always live
// there), picks the game store and serves the API.

package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/chess/internal/config"
	"github.com/robalobadob/chess/internal/httpserver"
	"github.com/robalobadob/chess/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	db, err := store.OpenDB(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
	}
	defer db.Close()
	if err := store.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	var st store.Store
	switch cfg.Store {
	case "sqlite":
		st = store.NewSQLiteStore(db)
	default:
		st = store.NewMemoryStore()
	}

	srv := httpserver.New(cfg, st, db)
	log.Info().Str("port", cfg.Port).Str("store", cfg.Store).Msg("starting chess server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
