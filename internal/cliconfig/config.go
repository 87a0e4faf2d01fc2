package cliconfig

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/yqrt/internal/adapters/framing"
	"github.com/bft-labs/yqrt/internal/adapters/lua"
)

// Hook output sinks.
const (
	HookOutputStdout = "stdout"
	HookOutputStderr = "stderr"
)

// Log formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config holds CLI configuration for yqrt.
type Config struct {
	Framing       string
	Extension     string
	WaitExtension time.Duration
	MaxFrameBytes int
	HookOutput    string

	LogLevel  string
	LogFormat string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Framing:       framing.DisciplineJSON,
		Extension:     lua.DefaultPath,
		MaxFrameBytes: framing.DefaultLimits().MaxFrameBytes,
		HookOutput:    HookOutputStdout,
		LogLevel:      zerolog.InfoLevel.String(),
		LogFormat:     LogFormatConsole,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.Framing {
	case framing.DisciplineJSON, framing.DisciplineLength:
	default:
		return fmt.Errorf("framing must be %s or %s, got %q", framing.DisciplineJSON, framing.DisciplineLength, c.Framing)
	}

	if c.Extension == "" {
		return fmt.Errorf("extension path is required")
	}
	if c.WaitExtension < 0 {
		return fmt.Errorf("wait-extension must not be negative")
	}
	if c.MaxFrameBytes <= 0 {
		return fmt.Errorf("max-frame-bytes must be positive")
	}

	switch c.HookOutput {
	case HookOutputStdout, HookOutputStderr:
	default:
		return fmt.Errorf("hook-output must be %s or %s, got %q", HookOutputStdout, HookOutputStderr, c.HookOutput)
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}
	switch c.LogFormat {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("log-format must be %s or %s, got %q", LogFormatConsole, LogFormatJSON, c.LogFormat)
	}

	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setIntFromString parses a positive int from a string and sets the destination.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return fmt.Errorf("parse %s: must be positive, got %d", flag, i)
	}
	*dst = i
	return nil
}
