// Package logging provides a minimal logging facade for the bindings.
//
// The Logger interface wraps a subset of the standard library's log/slog so
// the bindings can trace handle creation, teardown, and native calls at
// debug level without forcing a logging framework on callers. The default
// everywhere is Nop; pass logging.New(nil) in a Config to use slog.Default.
package logging
