// Package yqrt hosts an event-driven user program behind a stdin/stdout protocol.
//
// Example usage:
//
//	cfg := yqrt.DefaultConfig()
//	cfg.Framing = "length"
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	err := yqrt.Run(context.Background(), cfg)
//	os.Exit(yqrt.ExitCode(err))
package yqrt

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bft-labs/yqrt/internal/cliconfig"
	"github.com/bft-labs/yqrt/pkg/yqrt"
)

// Config holds the configuration for the host.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = yqrt.Config

// Option configures optional behavior of the host.
type Option = yqrt.Option

// Run loads the program and processes events from stdin until the input ends
// or an error stops the loop. It returns nil after a clean end of input.
func Run(ctx context.Context, cfg Config, opts ...Option) error {
	host, err := yqrt.New(cfg, opts...)
	if err != nil {
		return err
	}
	return host.Run(ctx)
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return yqrt.DefaultConfig()
}

// ExitCode maps an error returned by Run to a process exit code.
func ExitCode(err error) int {
	return yqrt.ExitCode(err)
}

// Logger returns the package-level zerolog logger, writing to stderr.
func Logger() zerolog.Logger {
	return cliconfig.Logger()
}
