// Package logger provides structured logging functionality for the
// application, built on log/slog with JSON output and context-carrying
// helpers for request-scoped loggers.
package logger
