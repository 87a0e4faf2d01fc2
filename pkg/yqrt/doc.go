// Package yqrt provides an embeddable runtime host for event-driven user programs.
//
// A Host reads framed events from an input stream, calls the program's
// on_init and on_message hooks, and acknowledges each handled event by
// writing a single BEL byte (0x07) to the output stream. It can be used as
// the standalone yqrt CLI or embedded as a library.
//
// # Basic Usage
//
//	cfg := yqrt.DefaultConfig()
//	cfg.Framing = yqrt.FramingLength
//
//	host, err := yqrt.New(cfg, yqrt.WithIO(os.Stdin, os.Stdout, os.Stderr))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = host.Run(context.Background())
//	os.Exit(yqrt.ExitCode(err))
//
// # Programs
//
// By default the host loads a Lua unit from [Config.Extension] and binds its
// global on_init and on_message functions. Go programs can be supplied
// directly with [WithProgram]:
//
//	program := extension.New(
//	    extension.WithOnMessage(func(p extension.Payload) error {
//	        fmt.Fprintln(os.Stderr, p.Summary(80))
//	        return nil
//	    }),
//	)
//	host, err := yqrt.New(cfg, yqrt.WithProgram(program))
//
// # Framing
//
// Two disciplines are supported. [FramingJSON] reads one JSON object per line:
//
//	{"kind":"init"}
//	{"kind":"message","author":1,"timestamp":1000,"text":"hi"}
//
// [FramingLength] reads a header line followed by exactly that many raw bytes:
//
//	init 0
//	message 2
//	hi
//
// # Lifecycle States
//
// A Host moves from [StateStarting] to [StateRunning] once the program is
// loaded, and to [StateTerminated] when the input ends or an error stops the
// loop. Terminated is final; a Host runs once.
//
// # Exit Codes
//
// [ExitCode] maps the error returned by [Host.Run] to a process exit code:
// 0 after a clean end of input, 3 for load failures, 4 for framing errors,
// 5 for unknown event kinds, 6 for hook errors, 130 when the context is
// canceled, and 1 for anything else.
package yqrt
