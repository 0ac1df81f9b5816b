// Copyright (c) 2026, Hueshift Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles publishes derived palettes to the rendering layer as
// CSS custom properties, with update debouncing and bounded
// memoization of palette derivation.
package styles

import (
	"fmt"
	"strings"

	"github.com/hueshift/hueshift/hsl"
	"github.com/hueshift/hueshift/palette"
)

// Vars converts each palette slot back to an HSL triple and returns
// the style variables, keyed --primary, --primary-light, etc., with
// raw "H S% L%" triple values.
func Vars(p *palette.Palette) (map[string]string, error) {
	slots := p.Slots()
	vars := make(map[string]string, len(slots))
	for _, s := range slots {
		c, err := hsl.FromHex(s.Hex)
		if err != nil {
			return nil, fmt.Errorf("styles.Vars: slot %s: %w", s.Name, err)
		}
		vars["--"+s.Name] = fmt.Sprintf("%d %d%% %d%%", c.H, c.S, c.L)
	}
	return vars, nil
}

// CSS returns a :root block declaring the style variables of [Vars],
// in stable slot order.
func CSS(p *palette.Palette) (string, error) {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, s := range p.Slots() {
		c, err := hsl.FromHex(s.Hex)
		if err != nil {
			return "", fmt.Errorf("styles.CSS: slot %s: %w", s.Name, err)
		}
		fmt.Fprintf(&b, "  --%s: %d %d%% %d%%;\n", s.Name, c.H, c.S, c.L)
	}
	b.WriteString("}\n")
	return b.String(), nil
}
