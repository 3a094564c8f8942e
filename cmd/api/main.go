package main

import (
	"net/http"
	"os"

	"legalyze/internal/api"
	"legalyze/internal/config"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	_ = godotenv.Load(".env")
	cfg := config.Load()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	s, err := api.NewServer(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("server init failed")
	}
	defer s.Close()

	logger.Info().
		Str("addr", cfg.APIAddr).
		Str("store", cfg.Store).
		Str("llm_providers", cfg.LLMProviders).
		Msg("legalyze api listening")
	if err := http.ListenAndServe(cfg.APIAddr, s.Routes()); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
