package app

import (
	"github.com/bft-labs/yqrt/internal/domain"
	"github.com/bft-labs/yqrt/internal/ports"
	"github.com/bft-labs/yqrt/pkg/extension"
)

// Dispatcher maps a frame's kind to the matching hook of the program.
type Dispatcher struct {
	program ports.Program
}

// NewDispatcher creates a dispatcher for program.
func NewDispatcher(program ports.Program) *Dispatcher {
	return &Dispatcher{program: program}
}

// Dispatch invokes the hook for frame and waits for it to return.
// Hook return values are not inspected; hook errors come back as
// *domain.HookExecutionError and unknown kinds as *domain.UnknownKindError.
func (d *Dispatcher) Dispatch(frame domain.Frame) error {
	switch frame.Kind {
	case domain.KindInit:
		if err := d.program.OnInit(); err != nil {
			return &domain.HookExecutionError{Hook: extension.HookOnInit, Err: err}
		}
	case domain.KindMessage:
		if err := d.program.OnMessage(frame.Payload); err != nil {
			return &domain.HookExecutionError{Hook: extension.HookOnMessage, Err: err}
		}
	default:
		return &domain.UnknownKindError{Name: frame.Name}
	}
	return nil
}
