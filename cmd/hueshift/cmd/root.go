// Copyright (c) 2026, Hueshift Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the hueshift command line interface.
package cmd

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hueshift/hueshift/base/errors"
	"github.com/hueshift/hueshift/base/logx"
	"github.com/hueshift/hueshift/theme"
	"github.com/spf13/cobra"
)

var (
	settingsFile string
	presetsFile  string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "hueshift",
	Short: "hueshift derives coordinated UI color palettes from one seed color",
	Long: `hueshift derives a full coordinated color palette (tonal, analogous,
and complementary variants plus neutral slots) from a single seed
accent color, checks it against WCAG contrast requirements, and renders
it as CSS custom properties.

Seeds may be given as hex colors (#3b82f6), SVG color names
(steelblue), or preset names (see --presets).`,
	SilenceUsage: true,
}

// Execute runs the root command, exiting nonzero on an error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initLogging, initPresets)
	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", defaultSettingsFile(), "settings file")
	rootCmd.PersistentFlags().StringVar(&presetsFile, "presets", "", "YAML file of extra seed presets (name: \"#rrggbb\")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func initLogging() {
	if verbose {
		logx.UserLevel = slog.LevelDebug
	}
	logx.Init(os.Stderr)
}

func initPresets() {
	if presetsFile != "" {
		errors.Log(theme.LoadPresets(presetsFile))
	}
}

func defaultSettingsFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "hueshift", "settings.toml")
}
