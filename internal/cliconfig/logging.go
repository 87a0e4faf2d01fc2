package cliconfig

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
}

// Logger returns the CLI's bootstrap logger, used until the configured one is built.
func Logger() zerolog.Logger {
	return logger
}

// NewLogger builds the logger described by cfg. It never writes to stdout.
func NewLogger(w io.Writer, cfg Config) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("log-level: %w", err)
	}

	var out io.Writer
	switch cfg.LogFormat {
	case LogFormatJSON:
		out = w
	case LogFormatConsole, "":
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	default:
		return zerolog.Logger{}, fmt.Errorf("unknown log format %q", cfg.LogFormat)
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
