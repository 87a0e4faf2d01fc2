package ports

import "github.com/bft-labs/yqrt/internal/domain"

// FrameReader produces frames from the input stream, one per call.
// There is one implementation per framing discipline; the host picks one at startup.
type FrameReader interface {
	// Next blocks until a complete frame is available.
	// Returns io.EOF when the stream ends on a frame boundary.
	// Returns a *domain.FramingError for malformed or truncated input.
	// Frames with a kind outside {init, message} are returned, not rejected;
	// the dispatcher owns that decision.
	Next() (domain.Frame, error)

	// Discipline returns the name of the framing discipline ("json" or "length").
	Discipline() string
}
