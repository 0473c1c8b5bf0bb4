// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package logger provides a context-aware logger built on [slog].
package logger

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

type ctxKey string

const loggerKey ctxKey = "logger"

// Logger encapsulates an [slog.Logger] together with the [slog.LevelVar]
// that controls its level.
type Logger struct {
	*slog.Logger
	Level *slog.LevelVar
}

// New returns a Logger that writes human friendly records to w. Records are
// colored if color is true. The level is LevelInfo if level is nil.
func New(w io.Writer, level *slog.LevelVar, color bool) *Logger {
	if level == nil {
		level = new(slog.LevelVar)
		level.Set(slog.LevelInfo)
	}
	return &Logger{
		Logger: slog.New(tint.NewHandler(w, &tint.Options{
			Level:       level,
			NoColor:     !color,
			TimeFormat:  time.Kitchen,
			ReplaceAttr: dropTime,
		})),
		Level: level,
	}
}

// dropTime removes the timestamp from top-level records.
func dropTime(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}

var defaultLogger = &Logger{
	Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	Level:  new(slog.LevelVar),
}

// Put returns a new context with the provided [Logger].
func Put(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// Get retrieves the [Logger] from the context.
//
// If the context has no [Logger], it returns a default [Logger] that discards all
// messages.
func Get(ctx context.Context) *Logger {
	if l, ok := ctx.Value(loggerKey).(*Logger); ok {
		return l
	}
	return defaultLogger
}

// IsDefault returns true if l is the default [Logger].
func IsDefault(l *Logger) bool { return l == defaultLogger }

// LevelVar retrieves the [slog.LevelVar] associated with the [Logger] in the context.
func LevelVar(ctx context.Context) *slog.LevelVar { return Get(ctx).Level }

// Debug logs a debug message.
func Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

// Info logs an info message.
func Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

// Warn logs a warning message.
func Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, slog.LevelWarn, msg, attrs...)
}

// Error logs an error message.
func Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	Get(ctx).LogAttrs(ctx, slog.LevelError, msg, attrs...)
}
