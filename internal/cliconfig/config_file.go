package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	Framing       string `toml:"framing"`
	Extension     string `toml:"extension"`
	WaitExtension string `toml:"wait_extension"`
	MaxFrameBytes int    `toml:"max_frame_bytes"`
	HookOutput    string `toml:"hook_output"`
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.yqrt/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".yqrt", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("framing", fc.Framing, &cfg.Framing)
	s.setString("extension", fc.Extension, &cfg.Extension)
	s.setString("hook-output", fc.HookOutput, &cfg.HookOutput)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("log-format", fc.LogFormat, &cfg.LogFormat)

	if err := s.setDuration("wait-extension", fc.WaitExtension, &cfg.WaitExtension); err != nil {
		return err
	}

	s.setInt("max-frame-bytes", fc.MaxFrameBytes, &cfg.MaxFrameBytes)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
