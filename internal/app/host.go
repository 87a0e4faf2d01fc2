package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bft-labs/yqrt/internal/domain"
	"github.com/bft-labs/yqrt/internal/ports"
)

// defaultSummaryLimit bounds how much of a payload is echoed to the log.
const defaultSummaryLimit = 80

// Loader resolves and activates the user program. It runs once, in StateStarting.
type Loader func(ctx context.Context) (ports.Program, error)

// HostConfig contains configuration for the host loop.
type HostConfig struct {
	// SummaryLimit bounds the payload text echoed per received frame. Zero uses the default.
	SummaryLimit int
}

// Host ties the frame reader, dispatcher and acknowledger into the
// read -> dispatch -> acknowledge loop.
type Host struct {
	config    HostConfig
	reader    ports.FrameReader
	loader    Loader
	ack       ports.Acknowledger
	logger    ports.Logger
	lifecycle *Lifecycle
	frames    int
}

// NewHost creates a new host with the given dependencies.
func NewHost(
	config HostConfig,
	reader ports.FrameReader,
	loader Loader,
	ack ports.Acknowledger,
	logger ports.Logger,
	emitter EventEmitter,
) *Host {
	if config.SummaryLimit <= 0 {
		config.SummaryLimit = defaultSummaryLimit
	}
	return &Host{
		config:    config,
		reader:    reader,
		loader:    loader,
		ack:       ack,
		logger:    logger,
		lifecycle: NewLifecycle(logger, emitter),
	}
}

// Run loads the program and processes frames until the input ends or an
// error terminates the loop. It returns nil after a clean end of input.
// The exit code for the returned error is available from ExitCode.
func (h *Host) Run(ctx context.Context) error {
	if state := h.lifecycle.State(); state != StateStarting {
		return fmt.Errorf("%w: run while %s", domain.ErrInvalidTransition, state)
	}

	program, err := h.loader(ctx)
	if err != nil {
		h.logger.Error("failed to load extension", ports.Err(err))
		return h.lifecycle.Terminate(err)
	}
	defer func() {
		if err := program.Close(); err != nil {
			h.logger.Warn("failed to close extension", ports.Err(err))
		}
	}()

	if err := h.lifecycle.TransitionTo(StateRunning, "extension loaded"); err != nil {
		return err
	}

	dispatcher := NewDispatcher(program)

	for {
		select {
		case <-ctx.Done():
			h.logger.Warn("interrupted", ports.Int("frames", h.frames))
			return h.lifecycle.Terminate(fmt.Errorf("%w: %w", domain.ErrInterrupted, ctx.Err()))
		default:
		}

		frame, err := h.reader.Next()
		if err != nil {
			if !errors.Is(err, domain.ErrFraming) && errors.Is(err, io.EOF) {
				h.logger.Info("end of input", ports.Int("frames", h.frames))
				return h.lifecycle.Terminate(nil)
			}
			h.logger.Error("bad input", ports.Err(err))
			return h.lifecycle.Terminate(err)
		}

		h.logger.Info("received event",
			ports.String("event", frame.Name),
			ports.Int("length", frame.Size),
			ports.String("payload", frame.Summary(h.config.SummaryLimit)),
		)

		if err := dispatcher.Dispatch(frame); err != nil {
			h.logger.Error("dispatch failed", ports.String("event", frame.Name), ports.Err(err))
			return h.lifecycle.Terminate(err)
		}

		if err := h.ack.Ack(); err != nil {
			err = fmt.Errorf("%w: %w", domain.ErrAcknowledge, err)
			h.logger.Error("acknowledge failed", ports.Err(err))
			return h.lifecycle.Terminate(err)
		}
		h.frames++
	}
}

// State returns the lifecycle state of the host.
func (h *Host) State() State {
	return h.lifecycle.State()
}

// ExitCode returns the exit code recorded when the host terminated.
func (h *Host) ExitCode() int {
	return h.lifecycle.ExitCode()
}

// Frames returns the number of frames acknowledged so far.
func (h *Host) Frames() int {
	return h.frames
}
