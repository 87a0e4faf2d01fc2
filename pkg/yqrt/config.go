package yqrt

import (
	"fmt"
	"time"

	"github.com/bft-labs/yqrt/internal/adapters/framing"
	"github.com/bft-labs/yqrt/internal/adapters/lua"
)

// Framing disciplines.
const (
	FramingJSON   = framing.DisciplineJSON
	FramingLength = framing.DisciplineLength
)

// Hook output sinks.
const (
	HookOutputStdout = "stdout"
	HookOutputStderr = "stderr"
)

// DefaultExtensionPath is where the Lua unit is looked up by default.
const DefaultExtensionPath = lua.DefaultPath

// Config holds the configuration for a Host.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config struct {
	// Framing selects the input discipline: FramingJSON or FramingLength.
	Framing string

	// Extension is the path of the Lua unit. Ignored when WithProgram is used.
	Extension string

	// WaitExtension, when positive, waits up to this long for the unit to
	// appear before loading it.
	WaitExtension time.Duration

	// MaxFrameBytes bounds a single frame.
	MaxFrameBytes int

	// HookOutput selects where print and io.write inside the unit go.
	// On stdout the output precedes the event's BEL.
	HookOutput string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Framing:       FramingJSON,
		Extension:     DefaultExtensionPath,
		MaxFrameBytes: framing.DefaultLimits().MaxFrameBytes,
		HookOutput:    HookOutputStdout,
	}
}

// SetDefaults fills zero values with defaults.
func (c *Config) SetDefaults() {
	d := DefaultConfig()
	if c.Framing == "" {
		c.Framing = d.Framing
	}
	if c.Extension == "" {
		c.Extension = d.Extension
	}
	if c.MaxFrameBytes == 0 {
		c.MaxFrameBytes = d.MaxFrameBytes
	}
	if c.HookOutput == "" {
		c.HookOutput = d.HookOutput
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	switch c.Framing {
	case FramingJSON, FramingLength:
	default:
		return fmt.Errorf("unknown framing %q", c.Framing)
	}
	if c.Extension == "" {
		return fmt.Errorf("extension path is required")
	}
	if c.WaitExtension < 0 {
		return fmt.Errorf("wait extension must not be negative")
	}
	if c.MaxFrameBytes <= 0 {
		return fmt.Errorf("max frame bytes must be positive")
	}
	switch c.HookOutput {
	case HookOutputStdout, HookOutputStderr:
	default:
		return fmt.Errorf("unknown hook output %q", c.HookOutput)
	}
	return nil
}
