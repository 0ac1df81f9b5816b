// Copyright (c) 2026, Hueshift Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/hueshift/hueshift/theme"
	"github.com/spf13/cobra"
)

var (
	setMode   string
	setColor  string
	setPreset string
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "update and save the persisted theme settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := theme.NewSettings(settingsFile)
		if err := s.Load(); err != nil {
			return err
		}
		if cmd.Flags().Changed("mode") {
			if err := s.Mode.UnmarshalText([]byte(setMode)); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("color") {
			seed, err := theme.ResolveSeed(setColor)
			if err != nil {
				return err
			}
			s.Color = seed
			s.Preset = ""
		}
		if cmd.Flags().Changed("preset") {
			if _, ok := theme.Presets()[setPreset]; !ok {
				return fmt.Errorf("unknown preset: %q", setPreset)
			}
			s.Preset = setPreset
		}
		if err := s.Save(); err != nil {
			return err
		}
		seed, err := s.Seed()
		if err != nil {
			return err
		}
		fmt.Printf("mode %s, seed %s -> %s\n", s.Mode, seed, s.Filename())
		return nil
	},
}

func init() {
	setCmd.Flags().StringVar(&setMode, "mode", "", "appearance mode: auto, light, or dark")
	setCmd.Flags().StringVar(&setColor, "color", "", "seed accent color (hex or SVG name)")
	setCmd.Flags().StringVar(&setPreset, "preset", "", "seed preset name")
	rootCmd.AddCommand(setCmd)
}
