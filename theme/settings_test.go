// Copyright (c) 2026, Hueshift Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hueshift/hueshift/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDefaults(t *testing.T) {
	s := NewSettings("settings.toml")
	assert.Equal(t, ModeAuto, s.Mode)
	assert.Equal(t, DefaultColor, s.Color)
	assert.Equal(t, "Theme", s.Label())
	assert.Equal(t, "settings.toml", s.Filename())
}

func TestSettingsSaveOpen(t *testing.T) {
	file := filepath.Join(t.TempDir(), "hueshift", "settings.toml")
	s := NewSettings(file)
	s.Mode = ModeDark
	s.Color = "#ef4444"
	require.NoError(t, s.Save())

	// modes persist as their names
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "dark")

	back := NewSettings(file)
	require.NoError(t, back.Open())
	assert.Equal(t, ModeDark, back.Mode)
	assert.Equal(t, "#ef4444", back.Color)
}

func TestSettingsLoadMissing(t *testing.T) {
	s := NewSettings(filepath.Join(t.TempDir(), "nope.toml"))
	s.Mode = ModeDark
	require.NoError(t, s.Load())
	assert.Equal(t, ModeAuto, s.Mode)
	assert.Equal(t, DefaultColor, s.Color)
}

func TestSettingsSeed(t *testing.T) {
	s := NewSettings("settings.toml")
	seed, err := s.Seed()
	require.NoError(t, err)
	assert.Equal(t, DefaultColor, seed)

	s.Preset = "emerald"
	seed, err = s.Seed()
	require.NoError(t, err)
	assert.Equal(t, "#10b981", seed)

	s.Preset = ""
	s.Color = "not a color"
	_, err = s.Seed()
	assert.Error(t, err)
}

func TestSettingsApply(t *testing.T) {
	pub := styles.NewPublisher(styles.WithWindow(0))
	defer pub.Close()
	var got []styles.Update
	unsub := pub.OnUpdate(func(u styles.Update) { got = append(got, u) })
	defer unsub()

	s := NewSettings("settings.toml")
	s.Mode = ModeDark
	s.Color = "#3b82f6"
	require.NoError(t, s.Apply(pub))

	require.Len(t, got, 1)
	assert.Equal(t, "#3b82f6", got[0].Seed)
	assert.True(t, got[0].Dark)

	s.Color = "garbage"
	assert.Error(t, s.Apply(pub))
	assert.Len(t, got, 1)
}
