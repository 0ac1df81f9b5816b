// Copyright (c) 2026, Hueshift Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/hueshift/hueshift/base/errors"
	"github.com/hueshift/hueshift/styles"
	"github.com/hueshift/hueshift/theme"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "watch the settings file and print updated CSS on every change",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := theme.NewSettings(settingsFile)
		if err := s.Load(); err != nil {
			return err
		}
		pub := styles.NewPublisher()
		defer pub.Close()
		unsub := pub.OnUpdate(func(u styles.Update) {
			css := errors.Log1(styles.CSS(u.Palette))
			fmt.Println(css)
		})
		defer unsub()

		stop, err := theme.Watch(s, pub)
		if err != nil {
			return err
		}
		defer stop()

		if err := s.Apply(pub); err != nil {
			return err
		}
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt)
		<-sig
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
