// Package logging assembles the structured slog loggers used by the
// beacon CLI.
//
// It owns the console and JSON handlers, centralizes level parsing, and
// provides a no-op logger for tests and wiring code that cannot fail.
// This is the tool's own logging; diagnostic traffic from the loader core
// flows through internal/diag sinks instead.
package logging
