// Copyright (c) 2026, Hueshift Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"

	"github.com/hueshift/hueshift/theme"
	"github.com/hueshift/hueshift/wcag"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <foreground> <background>",
	Short: "check two colors against the WCAG AA contrast requirement",
	Long: `Check prints the WCAG contrast ratio of the two given colors and
whether it meets the AA requirement for normal text (4.5). It exits
nonzero when the requirement is not met, so it can gate scripts.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fg, err := theme.ResolveSeed(args[0])
		if err != nil {
			return err
		}
		bg, err := theme.ResolveSeed(args[1])
		if err != nil {
			return err
		}
		ratio, err := wcag.ContrastRatioHex(fg, bg)
		if err != nil {
			return err
		}
		if ratio >= wcag.MinRatioAA {
			fmt.Printf("%.2f  AA pass\n", ratio)
			return nil
		}
		fmt.Printf("%.2f  AA fail (needs %.1f)\n", ratio, wcag.MinRatioAA)
		os.Exit(1)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
