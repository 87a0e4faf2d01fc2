package cliconfig

import "os"

// ApplyEnvConfig applies YQRT_* environment variables to cfg.
// Flags that were set explicitly (changed map) take precedence.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("framing", os.Getenv("YQRT_FRAMING"), &cfg.Framing)
	s.setString("extension", os.Getenv("YQRT_EXTENSION"), &cfg.Extension)
	s.setString("hook-output", os.Getenv("YQRT_HOOK_OUTPUT"), &cfg.HookOutput)
	s.setString("log-level", os.Getenv("YQRT_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("log-format", os.Getenv("YQRT_LOG_FORMAT"), &cfg.LogFormat)

	if err := s.setDuration("wait-extension", os.Getenv("YQRT_WAIT_EXTENSION"), &cfg.WaitExtension); err != nil {
		return err
	}
	if err := s.setIntFromString("max-frame-bytes", os.Getenv("YQRT_MAX_FRAME_BYTES"), &cfg.MaxFrameBytes); err != nil {
		return err
	}

	return nil
}
