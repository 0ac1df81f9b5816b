// Copyright (c) 2026, Hueshift Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides leveled logging on top of log/slog with a
// compact handler that colorizes level tags on terminal output.
package logx

import (
	"io"
	"log/slog"
)

// UserLevel is the verbosity level the user has selected; log messages
// below it are not shown. It is read by [Handler.Enabled] on every
// message, so it can be changed at any time.
var UserLevel = slog.LevelInfo

// Init sets the default slog logger to one writing
// to the given writer with a [Handler].
func Init(w io.Writer) {
	slog.SetDefault(slog.New(NewHandler(w)))
}

// Debug logs the given message at [slog.LevelDebug].
func Debug(msg string, args ...any) {
	slog.Debug(msg, args...)
}

// Info logs the given message at [slog.LevelInfo].
func Info(msg string, args ...any) {
	slog.Info(msg, args...)
}

// Warn logs the given message at [slog.LevelWarn].
func Warn(msg string, args ...any) {
	slog.Warn(msg, args...)
}

// Error logs the given message at [slog.LevelError].
func Error(msg string, args ...any) {
	slog.Error(msg, args...)
}
