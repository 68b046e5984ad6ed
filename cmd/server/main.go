// Package main is the entry point for the CodeTrove API server.
package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"codetrove/internal/alternatives"
	"codetrove/internal/config"
	"codetrove/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if dbDir := filepath.Dir(cfg.DBPath); dbDir != "." {
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			logger.Error("failed to create database directory",
				slog.String("dir", dbDir),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
	}

	// The alternatives endpoint is optional; the server runs without it.
	var gen alternatives.Generator
	if cfg.OpenAIKey != "" {
		gen = alternatives.NewOpenAI(cfg.OpenAIKey, logger)
	} else {
		logger.Warn("OPENAI_API_KEY not set, /api/alternatives will return errors")
	}

	srv, err := server.New(server.Config{Port: cfg.Port, DBPath: cfg.DBPath}, logger, gen)
	if err != nil {
		logger.Error("failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
