// Copyright (c) 2026, Hueshift Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/hueshift/hueshift/hsl"
	"github.com/hueshift/hueshift/palette"
	"github.com/hueshift/hueshift/theme"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var paletteDark bool

var paletteCmd = &cobra.Command{
	Use:   "palette <seed>",
	Short: "derive and print the palette for a seed color",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := theme.ResolveSeed(args[0])
		if err != nil {
			return err
		}
		p, err := palette.New(seed)
		if err != nil {
			return err
		}
		p = p.Scheme(paletteDark)
		color := termenv.ColorProfile() != termenv.Ascii
		for _, s := range p.Slots() {
			if color {
				c := hsl.MustFromHex(s.Hex)
				swatch := lipgloss.NewStyle().
					Background(lipgloss.Color(s.Hex)).
					Foreground(lipgloss.Color(hsl.ContrastColor(c).Hex())).
					Render(" " + s.Hex + " ")
				fmt.Printf("%-16s %s  %s\n", s.Name, swatch, c)
			} else {
				fmt.Printf("%-16s %s\n", s.Name, s.Hex)
			}
		}
		return nil
	},
}

func init() {
	paletteCmd.Flags().BoolVar(&paletteDark, "dark", false, "use the dark scheme neutrals")
	rootCmd.AddCommand(paletteCmd)
}
