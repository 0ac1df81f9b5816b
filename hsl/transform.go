// Copyright (c) 2026, Hueshift Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsl

const (
	// DefaultAmount is the conventional lightness or saturation
	// step for [Lighten], [Darken], [Saturate], and [Desaturate].
	DefaultAmount = 20

	// DefaultAnalogousOffset is the conventional hue offset
	// for [Analogous].
	DefaultAnalogousOffset = 30
)

// Lighten returns a color that is lighter by the given absolute
// lightness amount (0-100, ranges enforced).
func Lighten(c HSL, amount int) HSL {
	return New(c.H, c.S, c.L+amount)
}

// Darken returns a color that is darker by the given absolute
// lightness amount (0-100, ranges enforced).
func Darken(c HSL, amount int) HSL {
	return New(c.H, c.S, c.L-amount)
}

// Saturate returns a color that is more saturated by the given
// absolute saturation amount (0-100, ranges enforced).
func Saturate(c HSL, amount int) HSL {
	return New(c.H, c.S+amount, c.L)
}

// Desaturate returns a color that is less saturated by the given
// absolute saturation amount (0-100, ranges enforced).
func Desaturate(c HSL, amount int) HSL {
	return New(c.H, c.S-amount, c.L)
}

// Spin returns a color with the hue rotated by the given number of
// degrees, wrapping around the color wheel in either direction.
func Spin(c HSL, degrees int) HSL {
	return New(c.H+degrees, c.S, c.L)
}

// Complementary returns the complementary color, with the hue
// rotated 180 degrees.
func Complementary(c HSL) HSL {
	return Spin(c, 180)
}

// Analogous returns an analogous color, with the hue rotated by the
// given offset (commonly [DefaultAnalogousOffset]).
func Analogous(c HSL, offset int) HSL {
	return Spin(c, offset)
}

// IsLight returns whether the given color is light
// (has a lightness of at least 60).
func IsLight(c HSL) bool {
	return c.L >= 60
}

// IsDark returns whether the given color is dark
// (has a lightness less than 60).
func IsDark(c HSL) bool {
	return !IsLight(c)
}

// ContrastColor returns the color that should be used to contrast
// this color (white or black), based on the result of [IsLight].
func ContrastColor(c HSL) HSL {
	if IsLight(c) {
		return HSL{0, 0, 0}
	}
	return HSL{0, 0, 100}
}
