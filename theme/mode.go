// Copyright (c) 2026, Hueshift Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package theme persists the user's appearance settings (mode and seed
// accent color) and applies them by deriving and publishing palettes.
package theme

import (
	"fmt"
	"strings"
)

// Mode is an appearance mode that a user can select.
type Mode int32

const (
	// ModeAuto uses the appearance specified by the operating system.
	ModeAuto Mode = iota

	// ModeLight uses the light appearance.
	ModeLight

	// ModeDark uses the dark appearance.
	ModeDark
)

// SystemIsDark reports whether the operating system color scheme is
// dark. It is set by platform integrations; when nil, [ModeAuto]
// resolves to light.
var SystemIsDark func() bool

// ResolveDark resolves the given mode to a concrete dark flag,
// consulting [SystemIsDark] for [ModeAuto].
func ResolveDark(m Mode) bool {
	switch m {
	case ModeDark:
		return true
	case ModeLight:
		return false
	default:
		return SystemIsDark != nil && SystemIsDark()
	}
}

func (m Mode) String() string {
	switch m {
	case ModeLight:
		return "light"
	case ModeDark:
		return "dark"
	default:
		return "auto"
	}
}

// MarshalText implements [encoding.TextMarshaler],
// so modes persist as their names.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler],
// accepting mode names case-insensitively.
func (m *Mode) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "auto", "system", "":
		*m = ModeAuto
	case "light":
		*m = ModeLight
	case "dark":
		*m = ModeDark
	default:
		return fmt.Errorf("theme: invalid mode: %q", text)
	}
	return nil
}
