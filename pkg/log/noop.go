package log

import logAdapter "github.com/bft-labs/yqrt/internal/adapters/log"

// NewNoopLogger creates a logger that discards all messages.
func NewNoopLogger() Logger {
	return logAdapter.NewNoopLogger()
}
