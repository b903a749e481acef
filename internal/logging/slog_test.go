package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBufLogger() (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil))), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	ctx := context.Background()
	l, buf := newBufLogger()

	l.Info(ctx, "saved", "owner", "jay@example.com")
	l.Warn(ctx, "slow query")
	l.Error(ctx, "boom", "error", "disk full")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "owner=jay@example.com")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "disk full")
}

func TestSlogLogger_With(t *testing.T) {
	l, buf := newBufLogger()

	child := l.With("backend", "kv")
	child.Info(context.Background(), "opened")

	assert.Contains(t, buf.String(), "backend=kv")
}

func TestNopLogger(t *testing.T) {
	// Must be safe to call with no handler behind it.
	l := NewNop()
	l.Info(context.Background(), "ignored")
	l.With("k", "v").Error(context.Background(), "also ignored")
}
