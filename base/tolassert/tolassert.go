// Copyright (c) 2026, Hueshift Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides assert functions for comparing numbers
// within a tolerance, for testing computed color math.
package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/constraints"
)

// Equal asserts that the two numbers are within 0.001 of each other,
// or within the optionally given tolerance.
func Equal[T constraints.Integer | constraints.Float](t testing.TB, expected, actual T, tols ...float64) bool {
	t.Helper()
	tol := 0.001
	if len(tols) > 0 {
		tol = tols[0]
	}
	return EqualTol(t, expected, actual, tol)
}

// EqualTol asserts that the two numbers are within
// the given tolerance of each other.
func EqualTol[T constraints.Integer | constraints.Float](t testing.TB, expected, actual T, tol float64) bool {
	t.Helper()
	return assert.InDelta(t, float64(expected), float64(actual), tol)
}
