// Package logging defines the minimal structured-logging interface used
// across the MoodCam core, plus adapters. The variadic args are key-value
// pairs:
//
//	log.Info(ctx, "entry saved", "owner", email, "date", day)
package logging

import "context"

// Logger is a context-aware, structured logger.
type Logger interface {
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given pairs.
	With(args ...any) Logger
}

// NewNop returns a logger that discards everything. Handy in tests.
func NewNop() Logger { return nopLogger{} }

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) Logger                  { return n }
