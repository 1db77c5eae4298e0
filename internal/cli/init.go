// Package cli provides common CLI initialization utilities shared by
// cmd/clinica and cmd/clinica-worker.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"clinica/internal/config"
	"clinica/internal/log"
	"clinica/internal/storage"
)

// SetupLogger initializes structured logging with default settings.
// Returns the configured logger and sets it as the default logger.
func SetupLogger() *log.Logger {
	logger := log.New(log.DefaultConfig())
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err.Error())
		os.Exit(1)
	}
	return cfg
}

// InitJournal opens the SQLite journal at the given path.
// Returns the repository or exits the process on failure.
func InitJournal(logger *log.Logger, dbPath string) *storage.JournalRepository {
	journal, err := storage.NewJournalRepository(dbPath)
	if err != nil {
		logger.Error("Failed to initialize journal repository", log.FieldError, err.Error(), "path", dbPath)
		os.Exit(1)
	}
	return journal
}
