// Package cli holds the shared startup sequence for cmd/budgetto.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"budgetto/internal/config"
	applog "budgetto/internal/log"
	"budgetto/internal/store"
	"budgetto/internal/store/fileblob"
	"budgetto/internal/store/sqliteblob"
)

// LoadEnvFile loads .env for local development. Missing files are fine
// in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger installs the default structured logger at the given level.
func SetupLogger(level string) *slog.Logger {
	return applog.Setup(level)
}

// LoadAndValidateConfig loads configuration and exits the process on
// validation failure.
func LoadAndValidateConfig(logger *slog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// InitStore opens the configured persistence backend and builds the
// store on top of it. The returned closer releases backend resources.
func InitStore(logger *slog.Logger, cfg *config.Config) (*store.Store, func() error, error) {
	var (
		blobs  store.Blobs
		closer = func() error { return nil }
	)

	switch cfg.DataBackend {
	case "sqlite":
		db, err := sqliteblob.Open(cfg.SQLiteDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite backend: %w", err)
		}
		blobs = db
		closer = db.Close
		logger.Info("Initialized sqlite backend", "path", cfg.SQLiteDBPath)
	default:
		fb, err := fileblob.New(cfg.DataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("open file backend: %w", err)
		}
		blobs = fb
		logger.Info("Initialized file backend", "dir", cfg.DataDir)
	}

	st, err := store.New(blobs)
	if err != nil {
		_ = closer()
		return nil, nil, fmt.Errorf("init store: %w", err)
	}
	return st, closer, nil
}
