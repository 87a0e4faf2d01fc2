// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// In Clean Architecture / Hexagonal Architecture, ports are the boundaries
// between the application core and the outside world. They define what the
// host loop needs from external systems without specifying how those needs
// are fulfilled.
//
// # Port Interfaces
//
//   - [FrameReader]: Reads frames from the orchestrator's input stream
//   - [Program]: The loaded user program and its two hooks
//   - [Acknowledger]: Signals completion of a frame to the orchestrator
//   - [Logger]: Structured logging abstraction
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with concrete
// implementations (line-delimited JSON, length-prefixed text, Lua, zerolog).
package ports
