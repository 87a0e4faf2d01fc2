package ports

// Acknowledger signals completion of a frame to the orchestrator.
type Acknowledger interface {
	// Ack writes the sentinel byte and returns only once it has been
	// delivered to the underlying stream.
	Ack() error
}
