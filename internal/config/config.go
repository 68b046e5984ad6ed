// Package config loads server configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds server configuration.
type Config struct {
	Port      int
	DBPath    string
	OpenAIKey string // empty disables the alternatives endpoint
}

// Load reads configuration from .env (if present) and the environment.
func Load(logger *slog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using system environment variables")
	}

	cfg := &Config{
		Port:      8080,
		DBPath:    "data/codetrove.db",
		OpenAIKey: os.Getenv("OPENAI_API_KEY"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, &InvalidPortError{Value: portStr}
		}
		cfg.Port = port
	}

	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		cfg.DBPath = dbPath
	}

	return cfg, nil
}

// InvalidPortError reports a PORT value that is not a number.
type InvalidPortError struct {
	Value string
}

func (e *InvalidPortError) Error() string {
	return "invalid PORT value: " + e.Value
}
