package log

import (
	"time"

	"github.com/bft-labs/yqrt/internal/ports"
)

// Logger provides structured logging capabilities.
// Implementations can wrap zerolog, zap, logrus, or any other logging library.
type Logger = ports.Logger

// Field represents a key-value pair for structured logging.
type Field = ports.Field

// String creates a string field.
func String(key, value string) Field {
	return ports.String(key, value)
}

// Int creates an int field.
func Int(key string, value int) Field {
	return ports.Int(key, value)
}

// Int64 creates an int64 field.
func Int64(key string, value int64) Field {
	return ports.Int64(key, value)
}

// Bool creates a bool field.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Duration creates a duration field.
func Duration(key string, value time.Duration) Field {
	return ports.Duration(key, value)
}

// Err creates an error field with key "error".
func Err(err error) Field {
	return ports.Err(err)
}

// Any creates a field with any value.
func Any(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
