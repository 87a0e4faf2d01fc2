package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure kinds that terminate the host.
// The typed errors below wrap them, so errors.Is works on either.
var (
	// ErrExtensionLoad is returned when the user program cannot be located or loaded.
	ErrExtensionLoad = errors.New("yqrt: extension load failed")

	// ErrFraming is returned when the input cannot be parsed into a well-formed frame.
	ErrFraming = errors.New("yqrt: framing error")

	// ErrUnknownKind is returned when a frame names a kind outside {init, message}.
	ErrUnknownKind = errors.New("yqrt: unknown event kind")

	// ErrHookExecution is returned when a hook raises an error.
	ErrHookExecution = errors.New("yqrt: hook execution failed")

	// ErrAcknowledge is returned when the sentinel byte cannot be delivered.
	ErrAcknowledge = errors.New("yqrt: acknowledge failed")

	// ErrInterrupted is returned when the loop stops because its context was canceled.
	ErrInterrupted = errors.New("yqrt: interrupted")

	// ErrInvalidTransition is returned for a lifecycle transition the state machine forbids.
	ErrInvalidTransition = errors.New("yqrt: invalid state transition")
)

// Process exit codes.
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitExtension   = 3
	ExitFraming     = 4
	ExitUnknownKind = 5
	ExitHook        = 6
	ExitInterrupted = 130
)

// ExtensionLoadError reports a failure to load the user program at Path.
type ExtensionLoadError struct {
	Path string
	Err  error
}

func (e *ExtensionLoadError) Error() string {
	return fmt.Sprintf("load extension %s: %v", e.Path, e.Err)
}

func (e *ExtensionLoadError) Unwrap() []error { return []error{ErrExtensionLoad, e.Err} }

// FramingError reports input that cannot be parsed under the active discipline.
type FramingError struct {
	Discipline string
	Reason     string
	Err        error
}

func (e *FramingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s framing: %s: %v", e.Discipline, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s framing: %s", e.Discipline, e.Reason)
}

func (e *FramingError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFraming}
	}
	return []error{ErrFraming, e.Err}
}

// UnknownKindError reports a frame whose kind is outside the closed set.
type UnknownKindError struct {
	Name string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown event: %q", e.Name)
}

func (e *UnknownKindError) Unwrap() error { return ErrUnknownKind }

// HookExecutionError reports an error raised inside on_init or on_message.
type HookExecutionError struct {
	Hook string
	Err  error
}

func (e *HookExecutionError) Error() string {
	return fmt.Sprintf("hook %s: %v", e.Hook, e.Err)
}

func (e *HookExecutionError) Unwrap() []error { return []error{ErrHookExecution, e.Err} }

// ExitCode maps a terminal error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrExtensionLoad):
		return ExitExtension
	case errors.Is(err, ErrFraming):
		return ExitFraming
	case errors.Is(err, ErrUnknownKind):
		return ExitUnknownKind
	case errors.Is(err, ErrHookExecution):
		return ExitHook
	case errors.Is(err, ErrInterrupted):
		return ExitInterrupted
	default:
		return ExitFailure
	}
}
