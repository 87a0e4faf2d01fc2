// Package stdio implements the orchestrator-facing side of standard output.
package stdio

import (
	"bufio"
	"fmt"
)

// Sentinel is the byte that acknowledges a processed event (ASCII BEL).
const Sentinel byte = 0x07

// BellAcknowledger implements ports.Acknowledger on a buffered writer.
// Hook output routed to the same writer is delivered ahead of the sentinel.
type BellAcknowledger struct {
	w *bufio.Writer
}

// NewBellAcknowledger creates an acknowledger writing to w.
func NewBellAcknowledger(w *bufio.Writer) *BellAcknowledger {
	return &BellAcknowledger{w: w}
}

// Ack writes one sentinel byte and flushes.
func (a *BellAcknowledger) Ack() error {
	if err := a.w.WriteByte(Sentinel); err != nil {
		return fmt.Errorf("write sentinel: %w", err)
	}
	if err := a.w.Flush(); err != nil {
		return fmt.Errorf("flush stdout: %w", err)
	}
	return nil
}
