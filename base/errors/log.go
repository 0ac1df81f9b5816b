// Copyright (c) 2026, Hueshift Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"log/slog"
	"runtime"
)

// Log logs the given error if it is non-nil and returns it unchanged,
// so it can wrap a function call at sites that log and continue.
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Log1 logs the given error if it is non-nil and returns the
// accompanying value, for wrapping single-value-and-error calls.
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return v
}

// Must panics if the given error is non-nil, for errors
// that indicate a programming bug.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 is [Must] for single-value-and-error calls,
// returning the value.
func Must1[T any](v T, err error) T {
	Must(err)
	return v
}

// Ignore1 returns the value and discards the error,
// documenting that the error is intentionally unhandled.
func Ignore1[T any](v T, _ error) T {
	return v
}

// CallerInfo returns the file, line, and function of the
// grandparent caller, for inclusion in logged errors.
func CallerInfo() string {
	pc, file, line, _ := runtime.Caller(2)
	return fmt.Sprintf("%s:%d (%s)", file, line, runtime.FuncForPC(pc).Name())
}
