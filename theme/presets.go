// Copyright (c) 2026, Hueshift Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"fmt"
	"maps"
	"strings"

	"github.com/hueshift/hueshift/base/iox/yamlx"
	"github.com/hueshift/hueshift/hsl"
	"golang.org/x/image/colornames"
)

// presets maps preset names to seed hex colors. It starts with the
// builtin presets; [LoadPresets] and [AddPreset] merge over them.
var presets = map[string]string{
	"blue":    "#3b82f6",
	"indigo":  "#6366f1",
	"violet":  "#8b5cf6",
	"rose":    "#f43f5e",
	"red":     "#ef4444",
	"orange":  "#f97316",
	"amber":   "#f59e0b",
	"emerald": "#10b981",
	"teal":    "#14b8a6",
	"slate":   "#64748b",
}

// Presets returns a copy of the current preset name to seed map.
func Presets() map[string]string {
	return maps.Clone(presets)
}

// AddPreset registers the given named seed, replacing any existing
// preset of that name. The seed must be a valid hex color.
func AddPreset(name, seed string) error {
	canon, err := hsl.Canonical(seed)
	if err != nil {
		return fmt.Errorf("theme.AddPreset: %s: %w", name, err)
	}
	presets[strings.ToLower(name)] = canon
	return nil
}

// LoadPresets merges the presets in the given YAML file (a mapping of
// name to hex color) over the current ones. Entries with malformed
// colors make it fail without changing any preset.
func LoadPresets(filename string) error {
	loaded := map[string]string{}
	if err := yamlx.Open(&loaded, filename); err != nil {
		return err
	}
	canon := make(map[string]string, len(loaded))
	for name, seed := range loaded {
		c, err := hsl.Canonical(seed)
		if err != nil {
			return fmt.Errorf("theme.LoadPresets: %s: %w", name, err)
		}
		canon[strings.ToLower(name)] = c
	}
	maps.Copy(presets, canon)
	return nil
}

// ResolveSeed resolves a seed string to a canonical hex color.
// It accepts a preset name, a standard SVG 1.1 color name, or a hex
// string in any form [hsl.ParseHex] accepts, in that precedence order.
// Resolution never round trips through HSL, so the returned hex is an
// exact canonicalization of the chosen color.
func ResolveSeed(seed string) (string, error) {
	seed = strings.TrimSpace(seed)
	if hex, ok := presets[strings.ToLower(seed)]; ok {
		return hex, nil
	}
	if !strings.HasPrefix(seed, "#") {
		if c, ok := colornames.Map[strings.ToLower(seed)]; ok {
			return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), nil
		}
	}
	return hsl.Canonical(seed)
}
