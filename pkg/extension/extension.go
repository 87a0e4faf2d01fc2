package extension

import "github.com/bft-labs/yqrt/internal/domain"

// Hook names as user programs spell them.
const (
	HookOnInit    = "on_init"
	HookOnMessage = "on_message"
)

// Payload is the body passed to on_message: Text under the length-prefixed
// discipline, Message under the JSON discipline.
type Payload = domain.Payload

// Text is the raw body of a length-prefixed message frame.
type Text = domain.Text

// Message is the body of a JSON message frame.
type Message = domain.Message

// Option binds one capability of a Program.
type Option func(*Program)

// WithOnInit binds the on_init hook.
func WithOnInit(fn func() error) Option {
	return func(p *Program) {
		if fn != nil {
			p.onInit = fn
			p.hasOnInit = true
		}
	}
}

// WithOnMessage binds the on_message hook.
func WithOnMessage(fn func(Payload) error) Option {
	return func(p *Program) {
		if fn != nil {
			p.onMessage = fn
			p.hasOnMessage = true
		}
	}
}

// WithCloser registers a function that releases the program's runtime.
func WithCloser(fn func() error) Option {
	return func(p *Program) {
		if fn != nil {
			p.closer = fn
		}
	}
}

// Program is a loaded user program with both hooks always callable.
type Program struct {
	onInit       func() error
	onMessage    func(Payload) error
	closer       func() error
	hasOnInit    bool
	hasOnMessage bool
	closed       bool
}

// New builds a Program. Hooks that are not supplied are bound to no-ops.
func New(opts ...Option) *Program {
	p := &Program{
		onInit:    func() error { return nil },
		onMessage: func(Payload) error { return nil },
		closer:    func() error { return nil },
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// OnInit runs the on_init hook.
func (p *Program) OnInit() error {
	return p.onInit()
}

// OnMessage runs the on_message hook.
func (p *Program) OnMessage(payload Payload) error {
	return p.onMessage(payload)
}

// Close releases the program's runtime. Calls after the first are no-ops.
func (p *Program) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	return p.closer()
}

// Hooks lists the hooks the program actually defines.
func (p *Program) Hooks() []string {
	var hooks []string
	if p.hasOnInit {
		hooks = append(hooks, HookOnInit)
	}
	if p.hasOnMessage {
		hooks = append(hooks, HookOnMessage)
	}
	return hooks
}
