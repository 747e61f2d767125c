package logging

import (
	"context"
	"io"
	"log/slog"
)

const redactedPlaceholder = "[redacted]"

// Logger is what the wcf client writes its records to. Every call carries a
// context so handlers can pick up request-scoped attributes.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New adapts an slog.Logger. A nil logger means slog.Default() at the time of
// the call.
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return sloggerAdapter{base: logger}
}

// Discard returns a Logger that drops everything.
func Discard() Logger {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type sloggerAdapter struct {
	base *slog.Logger
}

func (a sloggerAdapter) Debug(ctx context.Context, msg string, args ...any) {
	a.base.Log(ctx, slog.LevelDebug, msg, args...)
}

func (a sloggerAdapter) Info(ctx context.Context, msg string, args ...any) {
	a.base.Log(ctx, slog.LevelInfo, msg, args...)
}

func (a sloggerAdapter) Warn(ctx context.Context, msg string, args ...any) {
	a.base.Log(ctx, slog.LevelWarn, msg, args...)
}

func (a sloggerAdapter) Error(ctx context.Context, msg string, args ...any) {
	a.base.Log(ctx, slog.LevelError, msg, args...)
}

func (a sloggerAdapter) With(args ...any) Logger {
	return sloggerAdapter{base: a.base.With(args...)}
}

// Redacted stands in for a value that must not reach the log, such as a chat
// message body. The key stays so readers can see something was there.
func Redacted(key string) slog.Attr {
	return slog.String(key, redactedPlaceholder)
}

// Placeholder is the text written in place of a redacted value.
func Placeholder() string {
	return redactedPlaceholder
}

// ParseLevel maps a level name to a slog.Level. Unknown names yield info.
func ParseLevel(name string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
