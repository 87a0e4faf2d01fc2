// Package domain contains the core domain entities and value objects for yqrt.
//
// This package represents the innermost layer of the Clean Architecture. It has
// no dependencies on infrastructure concerns (stdin/stdout, scripting runtimes,
// logging) and contains only the event model and its error kinds.
//
// # Entities
//
//   - [Frame]: A single event read from the orchestrator (kind + payload)
//   - [Kind]: The closed set of event kinds the host understands
//   - [Text], [Message]: The two message payload shapes, one per framing discipline
//
// # Errors
//
// Every failure that terminates the host loop is one of [ExtensionLoadError],
// [FramingError], [UnknownKindError] or [HookExecutionError]. Each wraps a
// sentinel so callers can test with errors.Is, and [ExitCode] maps them to
// the process exit status.
package domain
