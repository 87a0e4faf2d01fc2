package app

import (
	"fmt"

	"github.com/bft-labs/yqrt/internal/domain"
	"github.com/bft-labs/yqrt/internal/ports"
)

// State represents the lifecycle state of the host.
type State int

const (
	StateStarting State = iota
	StateRunning
	StateTerminated
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateStarting:
		return "Starting"
	case StateRunning:
		return "Running"
	case StateTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

// Lifecycle manages the state machine for the host:
//
//	Starting -> Running -> Terminated(code)
//	Starting -> Terminated(code)
//
// Terminated is final. The host is single-threaded, so no locking is needed.
type Lifecycle struct {
	state        State
	exitCode     int
	logger       ports.Logger
	eventEmitter EventEmitter
}

// EventEmitter is called when lifecycle state changes.
type EventEmitter interface {
	OnStateChange(previous, current State, reason string)
}

// NewLifecycle creates a lifecycle in StateStarting.
func NewLifecycle(logger ports.Logger, emitter EventEmitter) *Lifecycle {
	return &Lifecycle{
		state:        StateStarting,
		logger:       logger,
		eventEmitter: emitter,
	}
}

// State returns the current lifecycle state.
func (l *Lifecycle) State() State {
	return l.state
}

// ExitCode returns the recorded exit code. It is meaningful once Terminated.
func (l *Lifecycle) ExitCode() int {
	return l.exitCode
}

// TransitionTo attempts to transition to a new state.
// Returns an error if the transition is not valid.
func (l *Lifecycle) TransitionTo(newState State, reason string) error {
	oldState := l.state

	valid := false
	switch oldState {
	case StateStarting:
		valid = newState == StateRunning || newState == StateTerminated
	case StateRunning:
		valid = newState == StateTerminated
	}
	if !valid {
		return fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, oldState, newState)
	}

	l.state = newState

	if l.eventEmitter != nil {
		l.eventEmitter.OnStateChange(oldState, newState, reason)
	}

	l.logger.Debug("state transition",
		ports.String("from", oldState.String()),
		ports.String("to", newState.String()),
		ports.String("reason", reason),
	)

	return nil
}

// Terminate moves to StateTerminated, records the exit code for err, and
// returns err unchanged. A nil err records exit code 0.
func (l *Lifecycle) Terminate(err error) error {
	reason := "end of input"
	if err != nil {
		reason = err.Error()
	}
	// Set before the transition so emitters observe the final code.
	prev := l.exitCode
	l.exitCode = domain.ExitCode(err)
	if terr := l.TransitionTo(StateTerminated, reason); terr != nil {
		l.exitCode = prev
		return terr
	}
	return err
}
