package app

import (
	"errors"
	"testing"

	"github.com/bft-labs/yqrt/internal/domain"
	"github.com/bft-labs/yqrt/internal/ports"
)

// mockLogger implements ports.Logger for testing.
type mockLogger struct{}

func (mockLogger) Debug(msg string, fields ...ports.Field) {}
func (mockLogger) Info(msg string, fields ...ports.Field)  {}
func (mockLogger) Warn(msg string, fields ...ports.Field)  {}
func (mockLogger) Error(msg string, fields ...ports.Field) {}

// mockEmitter records state change events for testing.
type mockEmitter struct {
	events []stateChangeEvent
}

type stateChangeEvent struct {
	previous State
	current  State
	reason   string
}

func (m *mockEmitter) OnStateChange(previous, current State, reason string) {
	m.events = append(m.events, stateChangeEvent{previous, current, reason})
}

func TestNewLifecycle(t *testing.T) {
	l := NewLifecycle(&mockLogger{}, nil)

	if l == nil {
		t.Fatal("NewLifecycle returned nil")
	}
	if l.State() != StateStarting {
		t.Errorf("initial state = %v, want StateStarting", l.State())
	}
	if l.ExitCode() != 0 {
		t.Errorf("initial exit code = %d, want 0", l.ExitCode())
	}
}

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateStarting, "Starting"},
		{StateRunning, "Running"},
		{StateTerminated, "Terminated"},
		{State(99), "Unknown"},
	}

	for _, tt := range tests {
		got := tt.state.String()
		if got != tt.want {
			t.Errorf("State(%d).String() = %s, want %s", tt.state, got, tt.want)
		}
	}
}

func TestLifecycle_TransitionTo_ValidTransitions(t *testing.T) {
	tests := []struct {
		name string
		from State
		to   State
	}{
		{"starting to running", StateStarting, StateRunning},
		{"starting to terminated", StateStarting, StateTerminated},
		{"running to terminated", StateRunning, StateTerminated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLifecycle(&mockLogger{}, nil)
			l.state = tt.from

			if err := l.TransitionTo(tt.to, "test"); err != nil {
				t.Errorf("TransitionTo() error = %v", err)
			}
			if l.State() != tt.to {
				t.Errorf("state = %v after transition, want %v", l.State(), tt.to)
			}
		})
	}
}

func TestLifecycle_TransitionTo_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name string
		from State
		to   State
	}{
		{"starting to starting", StateStarting, StateStarting},
		{"running to starting", StateRunning, StateStarting},
		{"running to running", StateRunning, StateRunning},
		{"terminated to starting", StateTerminated, StateStarting},
		{"terminated to running", StateTerminated, StateRunning},
		{"terminated to terminated", StateTerminated, StateTerminated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLifecycle(&mockLogger{}, nil)
			l.state = tt.from

			err := l.TransitionTo(tt.to, "test")

			if !errors.Is(err, domain.ErrInvalidTransition) {
				t.Errorf("TransitionTo() error = %v, want ErrInvalidTransition", err)
			}
			// State should not change on invalid transition
			if l.State() != tt.from {
				t.Errorf("state changed to %v on invalid transition, want %v", l.State(), tt.from)
			}
		})
	}
}

func TestLifecycle_TransitionTo_EmitsEvents(t *testing.T) {
	emitter := &mockEmitter{}
	l := NewLifecycle(&mockLogger{}, emitter)

	_ = l.TransitionTo(StateRunning, "running test")
	_ = l.TransitionTo(StateTerminated, "terminated test")

	events := emitter.events
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}

	if events[0].previous != StateStarting || events[0].current != StateRunning {
		t.Errorf("event 0: got %v->%v, want Starting->Running", events[0].previous, events[0].current)
	}
	if events[1].previous != StateRunning || events[1].current != StateTerminated {
		t.Errorf("event 1: got %v->%v, want Running->Terminated", events[1].previous, events[1].current)
	}
	if events[1].reason != "terminated test" {
		t.Errorf("event 1 reason = %q, want %q", events[1].reason, "terminated test")
	}
}

func TestLifecycle_Terminate(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"clean end of input", nil, domain.ExitOK},
		{"framing error", &domain.FramingError{Discipline: "length", Reason: "declared length not satisfied"}, domain.ExitFraming},
		{"unknown kind", &domain.UnknownKindError{Name: "shutdown"}, domain.ExitUnknownKind},
		{"hook error", &domain.HookExecutionError{Hook: "on_init", Err: errors.New("boom")}, domain.ExitHook},
		{"load error", &domain.ExtensionLoadError{Path: "x.lua", Err: errors.New("missing")}, domain.ExitExtension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLifecycle(&mockLogger{}, nil)
			_ = l.TransitionTo(StateRunning, "test")

			got := l.Terminate(tt.err)
			if got != tt.err {
				t.Errorf("Terminate() = %v, want %v", got, tt.err)
			}
			if l.State() != StateTerminated {
				t.Errorf("state = %v, want Terminated", l.State())
			}
			if l.ExitCode() != tt.wantCode {
				t.Errorf("ExitCode() = %d, want %d", l.ExitCode(), tt.wantCode)
			}
		})
	}
}

func TestLifecycle_TerminateTwice(t *testing.T) {
	l := NewLifecycle(&mockLogger{}, nil)
	_ = l.Terminate(&domain.UnknownKindError{Name: "x"})

	err := l.Terminate(nil)
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Errorf("second Terminate() = %v, want ErrInvalidTransition", err)
	}
	if l.ExitCode() != domain.ExitUnknownKind {
		t.Errorf("ExitCode() = %d, want first code %d", l.ExitCode(), domain.ExitUnknownKind)
	}
}

// codeEmitter captures the lifecycle's exit code as each transition is emitted.
type codeEmitter struct {
	lifecycle *Lifecycle
	codes     []int
}

func (c *codeEmitter) OnStateChange(previous, current State, reason string) {
	c.codes = append(c.codes, c.lifecycle.ExitCode())
}

func TestLifecycle_Terminate_ExitCodeVisibleToEmitter(t *testing.T) {
	emitter := &codeEmitter{}
	l := NewLifecycle(&mockLogger{}, emitter)
	emitter.lifecycle = l

	_ = l.TransitionTo(StateRunning, "test")
	_ = l.Terminate(&domain.FramingError{Discipline: "json", Reason: "empty line"})

	if len(emitter.codes) != 2 {
		t.Fatalf("emitted %d events, want 2", len(emitter.codes))
	}
	if emitter.codes[1] != domain.ExitFraming {
		t.Errorf("exit code during Terminated event = %d, want %d", emitter.codes[1], domain.ExitFraming)
	}
}
