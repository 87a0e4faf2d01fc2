// Package extension provides the capability object the host dispatches to.
//
// A user program exposes up to two hooks, on_init and on_message. Whatever it
// does not define is bound to a no-op of the same shape, so the host can always
// call both and still acknowledge every event.
//
// # Usage
//
// Programs written in Go can be handed to the host directly:
//
//	prog := extension.New(
//	    extension.WithOnMessage(func(p extension.Payload) error {
//	        if msg, ok := p.(extension.Message); ok {
//	            fmt.Fprintf(os.Stderr, "%d: %s\n", msg.Author, msg.Text)
//	        }
//	        return nil
//	    }),
//	)
//	err := yqrt.Run(ctx, cfg, yqrt.WithProgram(prog))
//
// Without WithProgram the host loads a Lua unit from the configured path and
// builds the same object from its global functions.
package extension
