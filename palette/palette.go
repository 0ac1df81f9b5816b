// Copyright (c) 2026, Hueshift Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette derives a full coordinated color palette
// from a single seed accent color.
package palette

import (
	"fmt"

	"github.com/hueshift/hueshift/hsl"
	"github.com/hueshift/hueshift/wcag"
)

const (
	// TonalAmount is the lightness step between the primary color
	// and its light and dark tonal variants.
	TonalAmount = 15

	// SecondaryOffset is the analogous hue offset
	// for the secondary color.
	SecondaryOffset = 60

	// AccentSaturationBoost is added to the seed saturation
	// for the accent color.
	AccentSaturationBoost = 20

	// AccentSaturationMax caps the accent saturation. The cap can
	// lower the saturation of very saturated seeds; that is part of
	// the derivation contract.
	AccentSaturationMax = 80
)

// Fixed light theme values for the non-derived slots.
// Dark theme equivalents are applied by [Palette.Scheme].
const (
	LightBackground    = "#ffffff"
	LightSurface       = "#f8fafc"
	LightText          = "#1e293b"
	LightTextSecondary = "#64748b"

	DarkBackground    = "#0f172a"
	DarkSurface       = "#1e293b"
	DarkText          = "#f1f5f9"
	DarkTextSecondary = "#94a3b8"
)

// Palette is a full coordinated color palette as hex strings.
// The first five slots are derived from one seed color; the neutral
// slots are fixed per light or dark scheme.
type Palette struct {

	// Primary is the seed accent color, canonicalized
	Primary string

	// PrimaryLight is the light tonal variant of Primary
	PrimaryLight string

	// PrimaryDark is the dark tonal variant of Primary
	PrimaryDark string

	// Secondary is the analogous harmony color
	Secondary string

	// Accent is the saturation-boosted complementary color
	Accent string

	// Background is the page background color
	Background string

	// Surface is the card / container background color
	Surface string

	// Text is the main text color
	Text string

	// TextSecondary is the muted secondary text color
	TextSecondary string
}

// New derives a [Palette] from the given seed hex color. The same seed
// always yields the same palette. It returns an error wrapping
// [hsl.ErrInvalidFormat] if the seed is not a valid hex color.
func New(seed string) (*Palette, error) {
	canon, err := hsl.Canonical(seed)
	if err != nil {
		return nil, fmt.Errorf("palette.New: %w", err)
	}
	base := hsl.MustFromHex(canon)

	accent := hsl.Complementary(base)
	accent.S = min(AccentSaturationMax, base.S+AccentSaturationBoost)

	return &Palette{
		Primary:       canon,
		PrimaryLight:  hsl.Lighten(base, TonalAmount).Hex(),
		PrimaryDark:   hsl.Darken(base, TonalAmount).Hex(),
		Secondary:     hsl.Analogous(base, SecondaryOffset).Hex(),
		Accent:        accent.Hex(),
		Background:    LightBackground,
		Surface:       LightSurface,
		Text:          LightText,
		TextSecondary: LightTextSecondary,
	}, nil
}

// Scheme returns a copy of the palette adjusted for the given
// appearance: for the dark scheme the four neutral slots are replaced
// with their dark values and the secondary text color is stepped for
// WCAG AA contrast against the dark surface. The derived accent slots
// are never changed.
func (p *Palette) Scheme(dark bool) *Palette {
	np := *p
	if !dark {
		return &np
	}
	np.Background = DarkBackground
	np.Surface = DarkSurface
	np.Text = DarkText
	np.TextSecondary = wcag.EnsureContrast(hsl.MustFromHex(DarkTextSecondary), hsl.MustFromHex(DarkSurface)).Hex()
	return &np
}

// Slot is one named palette entry, in the kebab-case naming
// used for style variables.
type Slot struct {
	Name string
	Hex  string
}

// Slots returns the palette entries in stable declaration order.
func (p *Palette) Slots() []Slot {
	return []Slot{
		{"primary", p.Primary},
		{"primary-light", p.PrimaryLight},
		{"primary-dark", p.PrimaryDark},
		{"secondary", p.Secondary},
		{"accent", p.Accent},
		{"background", p.Background},
		{"surface", p.Surface},
		{"text", p.Text},
		{"text-secondary", p.TextSecondary},
	}
}
