package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	logAdapter "github.com/bft-labs/yqrt/internal/adapters/log"
	"github.com/bft-labs/yqrt/internal/cliconfig"
	"github.com/bft-labs/yqrt/pkg/yqrt"
)

const helpDescription = `
Run a user program behind a stdin/stdout event protocol.

Events arrive on stdin, one frame at a time. Each init event calls the
program's on_init, each message event calls on_message, and every handled
event is acknowledged with a single BEL byte (0x07) on stdout. Diagnostics
go to stderr.

Framing:
  json    one object per line: {"kind":"message","author":1,"timestamp":2,"text":"hi"}
  length  a header "<event> <bytes>\n" followed by exactly that many bytes

Exit codes: 0 end of input, 3 load failure, 4 framing error,
5 unknown event, 6 hook error, 1 anything else.
`

var exampleUsage = strings.TrimSpace(`
  yqrt --extension ./yqprogram.lua < events.jsonl
  yqrt --framing length --hook-output stderr
  yqrt --config $HOME/.yqrt/config.toml --wait-extension 30s
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:           "yqrt",
		Short:         "Run a user program behind a stdin/stdout event protocol",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// YQRT_* override the file; flags override both.
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := cliconfig.NewLogger(os.Stderr, cfg)
			if err != nil {
				return err
			}
			log = logger
			log.Debug().Interface("config", cfg).Msg("configuration")

			host, err := yqrt.New(yqrt.Config{
				Framing:       cfg.Framing,
				Extension:     cfg.Extension,
				WaitExtension: cfg.WaitExtension,
				MaxFrameBytes: cfg.MaxFrameBytes,
				HookOutput:    cfg.HookOutput,
			}, yqrt.WithLogger(logAdapter.NewZerologAdapterWithLogger(log)))
			if err != nil {
				return fmt.Errorf("create host: %w", err)
			}

			// No signal handler: SIGINT and SIGTERM keep their default behavior.
			return host.Run(context.Background())
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.yqrt/config.toml)")
	root.Flags().StringVar(&cfg.Framing, "framing", cfg.Framing, "input framing: json or length")
	root.Flags().StringVar(&cfg.Extension, "extension", cfg.Extension, "path of the Lua unit")
	root.Flags().DurationVar(&cfg.WaitExtension, "wait-extension", cfg.WaitExtension, "wait up to this long for the unit to appear (0 disables)")
	root.Flags().IntVar(&cfg.MaxFrameBytes, "max-frame-bytes", cfg.MaxFrameBytes, "maximum bytes in a single frame")
	root.Flags().StringVar(&cfg.HookOutput, "hook-output", cfg.HookOutput, "where the unit's print output goes: stdout or stderr")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	root.Flags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: console or json")

	if err := root.Execute(); err != nil {
		code := yqrt.ExitCode(err)
		log.Error().Err(err).Int("exit_code", code).Msg("yqrt")
		os.Exit(code)
	}
}
