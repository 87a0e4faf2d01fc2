package domain

import (
	"fmt"
	"strconv"
)

// Kind identifies the event carried by a frame.
type Kind int

const (
	KindUnknown Kind = iota
	KindInit
	KindMessage
)

// Wire names of the known kinds.
const (
	KindNameInit    = "init"
	KindNameMessage = "message"
)

// ParseKind maps a wire name to a Kind. Names outside the closed set map to
// KindUnknown; the caller keeps the raw name for diagnostics.
func ParseKind(name string) Kind {
	switch name {
	case KindNameInit:
		return KindInit
	case KindNameMessage:
		return KindMessage
	default:
		return KindUnknown
	}
}

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInit:
		return KindNameInit
	case KindMessage:
		return KindNameMessage
	default:
		return "unknown"
	}
}

// Payload is the kind-dependent body of a frame.
// It is nil for init frames, and either Text or Message for message frames.
type Payload interface {
	// Summary returns a short human-readable rendering for diagnostics.
	Summary(max int) string
}

// Text is the message payload produced by the length-prefixed discipline:
// the raw body bytes interpreted as text.
type Text string

// Summary implements Payload.
func (t Text) Summary(max int) string {
	return strconv.Quote(truncate(string(t), max))
}

// Message is the message payload produced by the line-delimited JSON discipline.
type Message struct {
	Author    int64
	Timestamp int64
	Text      string
}

// Summary implements Payload.
func (m Message) Summary(max int) string {
	return fmt.Sprintf("author=%d timestamp=%d text=%s", m.Author, m.Timestamp, strconv.Quote(truncate(m.Text, max)))
}

// Frame is the unit of work read from the input stream.
// Frames are built fresh for every loop iteration and never retained after dispatch.
type Frame struct {
	// Kind is the parsed event kind
	Kind Kind

	// Name is the event name exactly as it appeared on the wire
	Name string

	// Payload is nil for init frames
	Payload Payload

	// Size is the number of input bytes the frame consumed
	Size int
}

// Summary renders the payload for diagnostics, or "-" when there is none.
func (f Frame) Summary(max int) string {
	if f.Payload == nil {
		return "-"
	}
	return f.Payload.Summary(max)
}

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
