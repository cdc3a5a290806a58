// Package logging defines the structured-logging interface used across the
// backend. The only implementation wraps slog, but handlers and services
// depend on the interface so tests can plug in a silent logger.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key-value pairs, e.g.:
//
//	log.Info(ctx, "reset email sent", "user_id", id)
type Logger interface {
	// Debug logs fine-grained diagnostic information.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger
}
