// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package logger defines a printf-like logging type and a structured logger
// that travels in a context.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logf is the basic logger type: a printf-like func. Like [log.Printf], the
// format need not end in a newline. Logf functions must be safe for concurrent
// use.
type Logf func(format string, args ...any)

// Write implements the [io.Writer] interface.
func (f Logf) Write(p []byte) (n int, err error) {
	f("%s", p)
	return len(p), nil
}

// Logger is a [slog.Logger] together with the level it logs at.
type Logger struct {
	*slog.Logger
	Level *slog.LevelVar
}

// New returns a Logger writing text records without timestamps to w at
// info level.
func New(w io.Writer) *Logger {
	level := new(slog.LevelVar)
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	return &Logger{Logger: slog.New(h), Level: level}
}

// SetVerbosity maps a verbosity count to a level: below zero only errors are
// logged, zero logs info and above, anything higher also logs debug records.
func (l *Logger) SetVerbosity(v int) {
	switch {
	case v < 0:
		l.Level.Set(slog.LevelError)
	case v == 0:
		l.Level.Set(slog.LevelInfo)
	default:
		l.Level.Set(slog.LevelDebug)
	}
}

type ctxKey struct{}

var defaultLogger = New(os.Stderr)

// Put returns a copy of ctx carrying l.
func Put(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// Get returns the Logger stored in ctx, or a default one writing to standard
// error.
func Get(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return defaultLogger
}

// Debug logs at [slog.LevelDebug] with the Logger from ctx.
func Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

// Info logs at [slog.LevelInfo] with the Logger from ctx.
func Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

// Warn logs at [slog.LevelWarn] with the Logger from ctx.
func Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
}
