// Package sinks provides sink variants beyond the console pair built into
// internal/diag: a slog-backed sink that feeds loader diagnostics into
// structured logging, and a messenger sink that delivers debug-utils
// messages to a caller-supplied callback.
package sinks
