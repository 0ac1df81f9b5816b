// Copyright (c) 2026, Hueshift Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wcag computes WCAG 2 relative luminance and contrast ratios
// for [hsl.HSL] colors. All computation goes through the HSL color
// pipeline so that contrast results stay consistent with the palette's
// own color space.
package wcag

import (
	"github.com/chewxy/math32"
	"github.com/hueshift/hueshift/hsl"
)

// MinRatioAA is the minimum contrast ratio for WCAG
// AA conformance for normal text.
const MinRatioAA float32 = 4.5

// contrastStep is the lightness step [EnsureContrast] takes
// per iteration.
const contrastStep = 5

// Luminance returns the WCAG 2 relative luminance of the given color:
// the gamma-linearized channels weighted 0.2126, 0.7152, 0.0722.
func Luminance(c hsl.HSL) float32 {
	r, g, b := c.RGBFloat()
	return 0.2126*linearize(r) + 0.7152*linearize(g) + 0.0722*linearize(b)
}

// linearize converts one sRGB channel in 0-1 to linear light
// per the WCAG 2 definition.
func linearize(c float32) float32 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math32.Pow((c+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between the two
// colors, a value in 1-21. It is symmetric in its arguments.
func ContrastRatio(a, b hsl.HSL) float32 {
	la := Luminance(a)
	lb := Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// MeetsAA reports whether the contrast between the given foreground
// and background meets WCAG AA for normal text ([MinRatioAA]).
func MeetsAA(fg, bg hsl.HSL) bool {
	return ContrastRatio(fg, bg) >= MinRatioAA
}

// ContrastRatioHex is [ContrastRatio] for hex color strings.
func ContrastRatioHex(a, b string) (float32, error) {
	ca, err := hsl.FromHex(a)
	if err != nil {
		return 0, err
	}
	cb, err := hsl.FromHex(b)
	if err != nil {
		return 0, err
	}
	return ContrastRatio(ca, cb), nil
}

// MeetsAAHex is [MeetsAA] for hex color strings.
func MeetsAAHex(fg, bg string) (bool, error) {
	r, err := ContrastRatioHex(fg, bg)
	if err != nil {
		return false, err
	}
	return r >= MinRatioAA, nil
}

// EnsureContrast steps the foreground lightness away from the
// background until [MeetsAA] holds or the lightness scale is
// exhausted, returning the adjusted foreground.
func EnsureContrast(fg, bg hsl.HSL) hsl.HSL {
	lighten := hsl.IsDark(bg)
	for !MeetsAA(fg, bg) {
		var next hsl.HSL
		if lighten {
			next = hsl.Lighten(fg, contrastStep)
		} else {
			next = hsl.Darken(fg, contrastStep)
		}
		if next == fg {
			break
		}
		fg = next
	}
	return fg
}
