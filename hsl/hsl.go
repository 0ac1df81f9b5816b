// Copyright (c) 2026, Hueshift Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsl implements the HSL (hue, saturation, lightness) color
// model used for all palette derivation, including conversion to and
// from hex color strings.
package hsl

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"github.com/hueshift/hueshift/base/errors"
	"golang.org/x/image/colornames"
)

// ErrInvalidFormat indicates a color string that is not a valid
// #-optional 3 or 6 digit hex color. All parse failures in this
// package wrap it.
var ErrInvalidFormat = errors.New("hsl: invalid hex color format")

// HSL is a color with integer hue (0-360 degrees), saturation, and
// lightness (both 0-100 percent). The zero value is black.
// It implements [color.Color].
type HSL struct {

	// H is the hue in degrees, always in 0-360
	H int

	// S is the saturation as a percent, always in 0-100
	S int

	// L is the lightness as a percent, always in 0-100
	L int
}

// New returns a new [HSL] with the given components normalized:
// the hue is wrapped modulo 360 and the saturation and lightness
// are clamped to 0-100.
func New(h, s, l int) HSL {
	h %= 360
	if h < 0 {
		h += 360
	}
	return HSL{H: h, S: min(max(s, 0), 100), L: min(max(l, 0), 100)}
}

// ParseHex parses the given hex color string, which may have a leading
// # and must have 3 or 6 hex digits (a 3 digit shorthand is expanded by
// duplicating each digit). It returns the three 8-bit channels, or an
// error wrapping [ErrInvalidFormat] if the string is malformed.
func ParseHex(hex string) (r, g, b uint8, err error) {
	s := strings.TrimPrefix(hex, "#")
	switch len(s) {
	case 3:
		var full [6]byte
		for i := 0; i < 3; i++ {
			full[2*i] = s[i]
			full[2*i+1] = s[i]
		}
		s = string(full[:])
	case 6:
	default:
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, hex)
	}
	v, perr := strconv.ParseUint(s, 16, 32)
	if perr != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidFormat, hex)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// Canonical returns the canonical form of the given hex color string:
// lowercase, #-prefixed, 6 digits. It goes directly through the parsed
// channels without converting through HSL, so it is lossless.
func Canonical(hex string) (string, error) {
	r, g, b, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b), nil
}

// FromHex returns the [HSL] representation of the given hex color
// string (see [ParseHex] for the accepted forms).
func FromHex(hex string) (HSL, error) {
	r, g, b, err := ParseHex(hex)
	if err != nil {
		return HSL{}, err
	}
	return FromRGB(r, g, b), nil
}

// MustFromHex is [FromHex] for hex strings known to be valid;
// it panics on a malformed string.
func MustFromHex(hex string) HSL {
	return errors.Must1(FromHex(hex))
}

// FromRGB returns the [HSL] representation of the given
// 8-bit RGB channels.
func FromRGB(r, g, b uint8) HSL {
	rf := float32(r) / 255
	gf := float32(g) / 255
	bf := float32(b) / 255

	max := math32.Max(rf, math32.Max(gf, bf))
	min := math32.Min(rf, math32.Min(gf, bf))
	l := (max + min) / 2

	var h, s float32
	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2 - max - min)
		} else {
			s = d / (max + min)
		}
		switch max {
		case rf:
			h = (gf - bf) / d
			if gf < bf {
				h += 6
			}
		case gf:
			h = 2 + (bf-rf)/d
		case bf:
			h = 4 + (rf-gf)/d
		}
		h *= 60
	}
	return New(int(math32.Round(h)), int(math32.Round(s*100)), int(math32.Round(l*100)))
}

// FromColor returns the [HSL] representation of the given color.
func FromColor(c color.Color) HSL {
	if h, ok := c.(HSL); ok {
		return h
	}
	r, g, b, _ := c.RGBA()
	return FromRGB(uint8(r >> 8), uint8(g >> 8), uint8(b >> 8))
}

// FromString returns the [HSL] representation of the given color
// string, which may be a standard SVG 1.1 color name ("steelblue",
// the set [colornames] provides) or a hex string in any form
// [ParseHex] accepts.
func FromString(s string) (HSL, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return HSL{}, fmt.Errorf("%w: empty string", ErrInvalidFormat)
	}
	if !strings.HasPrefix(s, "#") {
		if c, ok := colornames.Map[strings.ToLower(s)]; ok {
			return FromRGB(c.R, c.G, c.B), nil
		}
	}
	return FromHex(s)
}

// RGBFloat returns the RGB representation of the color with each
// channel in 0-1, using the chroma / intermediate / match piecewise
// construction over the six 60 degree hue sectors. It is the shared
// basis for [HSL.RGB] and for WCAG luminance computation.
func (c HSL) RGBFloat() (r, g, b float32) {
	n := New(c.H, c.S, c.L)
	h := float32(n.H)
	s := float32(n.S) / 100
	l := float32(n.L) / 100

	ch := (1 - math32.Abs(2*l-1)) * s
	x := ch * (1 - math32.Abs(math32.Mod(h/60, 2)-1))
	m := l - ch/2

	var rp, gp, bp float32
	switch {
	case h < 60:
		rp, gp, bp = ch, x, 0
	case h < 120:
		rp, gp, bp = x, ch, 0
	case h < 180:
		rp, gp, bp = 0, ch, x
	case h < 240:
		rp, gp, bp = 0, x, ch
	case h < 300:
		rp, gp, bp = x, 0, ch
	default:
		rp, gp, bp = ch, 0, x
	}
	return rp + m, gp + m, bp + m
}

// RGB returns the 8-bit RGB representation of the color,
// with each channel rounded to the nearest integer.
func (c HSL) RGB() (r, g, b uint8) {
	rf, gf, bf := c.RGBFloat()
	return uint8(math32.Round(rf * 255)), uint8(math32.Round(gf * 255)), uint8(math32.Round(bf * 255))
}

// Hex returns the color as a lowercase 6 digit #-prefixed hex string.
// The round trip through [FromHex] is accurate to within 1 per channel
// due to integer rounding.
func (c HSL) Hex() string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// AsRGBA returns the color as an opaque [color.RGBA].
func (c HSL) AsRGBA() color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{r, g, b, 255}
}

// RGBA implements [color.Color].
func (c HSL) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := c.RGB()
	r = uint32(r8)
	r |= r << 8
	g = uint32(g8)
	g |= g << 8
	b = uint32(b8)
	b |= b << 8
	return r, g, b, 0xffff
}

// String returns the color in CSS hsl() functional notation.
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}
