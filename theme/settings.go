// Copyright (c) 2026, Hueshift Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"io/fs"

	"github.com/hueshift/hueshift/base/errors"
	"github.com/hueshift/hueshift/base/iox/tomlx"
	"github.com/hueshift/hueshift/styles"
)

// DefaultColor is the default seed accent color.
const DefaultColor = "#3b82f6"

// SettingsBase contains the persistence metadata
// common to settings data types.
type SettingsBase struct {

	// Name is the name of the settings.
	Name string `toml:"-"`

	// File is the filename at which the settings are stored.
	File string `toml:"-"`
}

// Label returns the label text for the settings.
func (sb *SettingsBase) Label() string {
	return sb.Name
}

// Filename returns the filename at which the settings are stored.
func (sb *SettingsBase) Filename() string {
	return sb.File
}

// Settings are the user's persisted appearance settings.
type Settings struct {
	SettingsBase

	// Mode is the light / dark / auto appearance mode.
	Mode Mode

	// Color is the seed accent hex color the palette derives from.
	Color string

	// Preset optionally names a seed preset (see [Presets]);
	// when set it takes precedence over Color.
	Preset string `toml:",omitempty"`
}

// NewSettings returns new [Settings] with defaults,
// stored at the given filename.
func NewSettings(file string) *Settings {
	s := &Settings{SettingsBase: SettingsBase{Name: "Theme", File: file}}
	s.Defaults()
	return s
}

// Defaults sets the default values for the settings.
func (s *Settings) Defaults() {
	s.Mode = ModeAuto
	s.Color = DefaultColor
	s.Preset = ""
}

// Open reads the settings from their file.
func (s *Settings) Open() error {
	return tomlx.Open(s, s.Filename())
}

// Save writes the settings to their file,
// creating any necessary parent directories.
func (s *Settings) Save() error {
	return tomlx.Save(s, s.Filename())
}

// Load sets the defaults and opens any saved settings over them.
// It is not an error for the settings to not be saved yet.
func (s *Settings) Load() error {
	s.Defaults()
	err := s.Open()
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Seed resolves the effective seed hex color
// from the preset or color setting.
func (s *Settings) Seed() (string, error) {
	if s.Preset != "" {
		return ResolveSeed(s.Preset)
	}
	return ResolveSeed(s.Color)
}

// Apply regenerates the palette for the current settings and
// publishes it through the given publisher.
func (s *Settings) Apply(pub *styles.Publisher) error {
	seed, err := s.Seed()
	if err != nil {
		return err
	}
	pub.Publish(seed, ResolveDark(s.Mode))
	return nil
}
