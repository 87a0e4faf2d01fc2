package log

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	logAdapter "github.com/bft-labs/yqrt/internal/adapters/log"
)

// NewZerologLogger wraps an existing zerolog.Logger.
func NewZerologLogger(logger zerolog.Logger) Logger {
	return logAdapter.NewZerologAdapterWithLogger(logger)
}

// NewConsoleLogger creates a zerolog logger with human-readable output on stderr.
func NewConsoleLogger() Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return NewZerologLogger(zerolog.New(output).With().Timestamp().Logger())
}
