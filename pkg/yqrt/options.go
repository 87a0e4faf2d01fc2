package yqrt

import (
	"io"
	"os"

	logAdapter "github.com/bft-labs/yqrt/internal/adapters/log"
	"github.com/bft-labs/yqrt/internal/ports"
	"github.com/bft-labs/yqrt/pkg/log"
)

// Program is a loaded user program. *extension.Program satisfies it.
type Program = ports.Program

// Option configures optional behavior of a Host.
type Option func(*options)

// options holds the optional configuration for a Host instance.
type options struct {
	logger       ports.Logger
	eventHandler EventHandler
	program      Program
	stdin        io.Reader
	stdout       io.Writer
	stderr       io.Writer
}

// defaultOptions returns options bound to the process's standard streams.
func defaultOptions() options {
	return options{
		logger: logAdapter.NewNoopLogger(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithEventHandler sets a handler for lifecycle events.
// Events are called synchronously from the loop.
func WithEventHandler(handler EventHandler) Option {
	return func(o *options) {
		o.eventHandler = handler
	}
}

// WithProgram supplies the user program directly instead of loading the
// Lua unit from Config.Extension.
func WithProgram(program Program) Option {
	return func(o *options) {
		o.program = program
	}
}

// WithIO replaces the standard streams. Nil arguments keep the default.
func WithIO(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(o *options) {
		if stdin != nil {
			o.stdin = stdin
		}
		if stdout != nil {
			o.stdout = stdout
		}
		if stderr != nil {
			o.stderr = stderr
		}
	}
}
