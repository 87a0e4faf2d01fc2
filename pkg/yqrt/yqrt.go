package yqrt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bft-labs/yqrt/internal/adapters/framing"
	"github.com/bft-labs/yqrt/internal/adapters/fs"
	"github.com/bft-labs/yqrt/internal/adapters/lua"
	"github.com/bft-labs/yqrt/internal/adapters/stdio"
	"github.com/bft-labs/yqrt/internal/app"
	"github.com/bft-labs/yqrt/internal/domain"
	"github.com/bft-labs/yqrt/internal/ports"
)

// Host runs one user program against one event stream.
// Use New() to create an instance, then Run() to process events.
type Host struct {
	config Config
	opts   options
	out    *bufio.Writer
	host   *app.Host
	logger ports.Logger
}

// New creates a Host with the given configuration.
// The Host is created in StateStarting; nothing is read or loaded until Run.
func New(cfg Config, opts ...Option) (*Host, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	reader, err := framing.NewReader(cfg.Framing, o.stdin, framing.Limits{MaxFrameBytes: cfg.MaxFrameBytes})
	if err != nil {
		return nil, err
	}

	out := bufio.NewWriter(o.stdout)
	h := &Host{
		config: cfg,
		opts:   o,
		out:    out,
		logger: o.logger,
	}

	emitter := &eventEmitterWrapper{handler: o.eventHandler}
	h.host = app.NewHost(app.HostConfig{}, reader, h.load, stdio.NewBellAcknowledger(out), o.logger, emitter)
	return h, nil
}

// Run loads the program and processes events until the input ends or an
// error stops the loop. It returns nil after a clean end of input. A Host
// runs once; later calls fail.
func (h *Host) Run(ctx context.Context) error {
	// Hook output written before a failure still reaches the orchestrator.
	defer func() {
		if err := h.out.Flush(); err != nil {
			h.logger.Warn("failed to flush output", ports.Err(err))
		}
	}()
	return h.host.Run(ctx)
}

// Status returns the current lifecycle state.
func (h *Host) Status() State {
	return convertState(h.host.State())
}

// ExitCode returns the exit code recorded when the Host terminated.
func (h *Host) ExitCode() int {
	return h.host.ExitCode()
}

// Frames returns the number of events acknowledged so far.
func (h *Host) Frames() int {
	return h.host.Frames()
}

// hookOutput returns where the unit's print and io.write land.
func (h *Host) hookOutput() io.Writer {
	if h.config.HookOutput == HookOutputStderr {
		return h.opts.stderr
	}
	return h.out
}

// load resolves the program in StateStarting.
func (h *Host) load(ctx context.Context) (ports.Program, error) {
	if h.opts.program != nil {
		return h.opts.program, nil
	}

	path := h.config.Extension
	if h.config.WaitExtension > 0 {
		if err := fs.WaitForFile(ctx, path, h.config.WaitExtension, h.logger); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, fmt.Errorf("%w: %w", domain.ErrInterrupted, err)
			}
			return nil, &domain.ExtensionLoadError{Path: path, Err: err}
		}
	}

	program, err := lua.Load(path, h.hookOutput())
	if err != nil {
		return nil, err
	}
	h.logger.Info("extension loaded",
		ports.String("path", path),
		ports.Field{Key: "hooks", Value: program.Hooks()},
	)
	return program, nil
}

// ExitCode maps an error returned by Run to a process exit code.
func ExitCode(err error) int {
	return domain.ExitCode(err)
}

// Sentinel errors for errors.Is checks against Run's result.
var (
	ErrExtensionLoad = domain.ErrExtensionLoad
	ErrFraming       = domain.ErrFraming
	ErrUnknownKind   = domain.ErrUnknownKind
	ErrHookExecution = domain.ErrHookExecution
	ErrAcknowledge   = domain.ErrAcknowledge
	ErrInterrupted   = domain.ErrInterrupted
)
