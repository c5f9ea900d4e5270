// Package logging assembles structured slog loggers shared by the pipeline,
// acquisition services, and CLI.
//
// It owns the console and JSON handlers, centralizes level parsing, and
// exposes typed attribute helpers so components emit log fields with a
// consistent shape. A no-op logger is available for tests and wiring code
// that cannot fail.
package logging
