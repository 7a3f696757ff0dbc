package main

import (
	"fmt"
	"os"

	"stroydoc/internal/config"
	"stroydoc/internal/database"
	"stroydoc/internal/handlers"
	"stroydoc/internal/logger"
	"stroydoc/internal/repository"
	"stroydoc/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	db, err := database.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init database")
	}

	records := repository.NewRecords(db)
	users := repository.NewUsers(db)
	h := handlers.New(records, users, log)

	r := server.NewRouter(cfg, h)

	addr := ":" + cfg.ServerPort
	log.Info().Str("addr", addr).Msg("starting server")
	if err := r.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
