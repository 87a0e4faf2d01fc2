package ports

import "github.com/bft-labs/yqrt/internal/domain"

// Program is the loaded user program.
// Both hooks are always callable: a program that does not define a hook
// binds a no-op in its place.
type Program interface {
	// OnInit runs the on_init hook.
	OnInit() error

	// OnMessage runs the on_message hook with the frame payload, which is
	// domain.Text or domain.Message depending on the framing discipline.
	OnMessage(payload domain.Payload) error

	// Close releases the program's runtime. It is called once, at termination.
	Close() error
}
