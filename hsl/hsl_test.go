// Copyright (c) 2026, Hueshift Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsl

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	assert.Equal(t, HSL{217, 91, 60}, New(217, 91, 60))
	assert.Equal(t, HSL{0, 0, 0}, New(360, -5, -1))
	assert.Equal(t, HSL{340, 100, 100}, New(-20, 150, 120))
	assert.Equal(t, HSL{10, 50, 50}, New(730, 50, 50))
}

func TestFromHex(t *testing.T) {
	tests := []struct {
		hex  string
		want HSL
	}{
		{"#ffffff", HSL{0, 0, 100}},
		{"#000000", HSL{0, 0, 0}},
		{"#ff0000", HSL{0, 100, 50}},
		{"#00ff00", HSL{120, 100, 50}},
		{"#0000ff", HSL{240, 100, 50}},
		{"#3b82f6", HSL{217, 91, 60}},
		{"3b82f6", HSL{217, 91, 60}},
		{"#3B82F6", HSL{217, 91, 60}},
		{"#f00", HSL{0, 100, 50}},
		{"#808080", HSL{0, 0, 50}},
	}
	for _, tt := range tests {
		have, err := FromHex(tt.hex)
		require.NoError(t, err, tt.hex)
		assert.Equal(t, tt.want, have, tt.hex)
	}
}

func TestFromHexInvalid(t *testing.T) {
	for _, hex := range []string{"", "#", "#12345", "#1234567", "#12345g", "#ggg", "red", "#ff00ff00"} {
		_, err := FromHex(hex)
		assert.ErrorIs(t, err, ErrInvalidFormat, hex)
	}
	assert.Panics(t, func() { MustFromHex("#nothex") })
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ff0000", HSL{0, 100, 50}.Hex())
	assert.Equal(t, "#0000ff", HSL{240, 100, 50}.Hex())
	assert.Equal(t, "#808080", HSL{0, 0, 50}.Hex())
	assert.Equal(t, "#ffffff", HSL{0, 0, 100}.Hex())
	assert.Equal(t, "#000000", HSL{0, 0, 0}.Hex())
}

func TestRoundTrip(t *testing.T) {
	seeds := []string{
		"#ffffff", "#000000", "#ff0000", "#00ff00", "#0000ff",
		"#3b82f6", "#808080", "#1e293b", "#f8fafc", "#64748b", "#ef4444",
	}
	for _, seed := range seeds {
		wr, wg, wb, err := ParseHex(seed)
		require.NoError(t, err)
		hr, hg, hb, err := ParseHex(MustFromHex(seed).Hex())
		require.NoError(t, err)
		assert.InDelta(t, int(wr), int(hr), 1, seed)
		assert.InDelta(t, int(wg), int(hg), 1, seed)
		assert.InDelta(t, int(wb), int(hb), 1, seed)
	}
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{"#3B82F6", "#3b82f6"},
		{"3b82f6", "#3b82f6"},
		{"#abc", "#aabbcc"},
	}
	for _, tt := range tests {
		have, err := Canonical(tt.hex)
		require.NoError(t, err)
		assert.Equal(t, tt.want, have)
	}
	_, err := Canonical("#12345")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestFromString(t *testing.T) {
	have, err := FromString("red")
	require.NoError(t, err)
	assert.Equal(t, HSL{0, 100, 50}, have)

	have, err = FromString("Steelblue")
	require.NoError(t, err)
	assert.Equal(t, MustFromHex("#4682b4"), have)

	have, err = FromString("#3b82f6")
	require.NoError(t, err)
	assert.Equal(t, HSL{217, 91, 60}, have)

	_, err = FromString("notacolor")
	assert.ErrorIs(t, err, ErrInvalidFormat)
	_, err = FromString("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestColorInterface(t *testing.T) {
	// one round trip of rounding: #3b82f6 comes back within 1 per channel
	c := MustFromHex("#3b82f6")
	assert.Equal(t, color.RGBA{60, 131, 246, 255}, FromColor(c).AsRGBA())

	have := FromColor(color.RGBA{59, 130, 246, 255})
	assert.Equal(t, HSL{217, 91, 60}, have)

	r, g, b, a := HSL{0, 100, 50}.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xffff), a)
}

func TestString(t *testing.T) {
	assert.Equal(t, "hsl(217, 91%, 60%)", HSL{217, 91, 60}.String())
}
