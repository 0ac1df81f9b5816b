// Copyright (c) 2026, Hueshift Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/hueshift/hueshift/palette"
	"github.com/hueshift/hueshift/styles"
	"github.com/hueshift/hueshift/theme"
	"github.com/spf13/cobra"
)

var cssDark bool

var cssCmd = &cobra.Command{
	Use:   "css <seed>",
	Short: "print the palette for a seed color as CSS custom properties",
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
		css, err := styles.CSS(p.Scheme(cssDark))
		if err != nil {
			return err
		}
		fmt.Print(css)
		return nil
	},
}

func init() {
	cssCmd.Flags().BoolVar(&cssDark, "dark", false, "use the dark scheme neutrals")
	rootCmd.AddCommand(cssCmd)
}
