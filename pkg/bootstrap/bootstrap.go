package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/duckydrinks/storefront/pkg/logger"
	bolt "go.etcd.io/bbolt"
)

// NewLogger creates a new slog.Logger instance with the specified log level.
// Records carry any request ID found in the call context.
func NewLogger(level string) *slog.Logger {
	logLevel := toLevel(level)
	loggerOpts := &slog.HandlerOptions{
		AddSource: logLevel == slog.LevelDebug,
		Level:     logLevel,
	}
	logHandler := slog.NewJSONHandler(os.Stdout, loggerOpts)
	return slog.New(logger.NewContextHandler(logHandler))
}

// NewCartDB opens the embedded key-value store file used for cart persistence.
// The open blocks on the file lock, so a timeout guards against a stuck
// previous process (fail early if the file is held).
func NewCartDB(path string, lockTimeout time.Duration) (*bolt.DB, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: lockTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open cart store at %s: %w", path, err)
	}
	return db, nil
}

// toLevel converts a string representation of a log level to slog.Level.
func toLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
