// Copyright (c) 2026, Hueshift Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package theme

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/hueshift/hueshift/base/errors"
	"github.com/hueshift/hueshift/base/logx"
	"github.com/hueshift/hueshift/styles"
)

// Watch watches the settings file and re-loads and re-applies the
// settings through the given publisher whenever another process writes
// it. It watches the parent directory so that editors that replace the
// file are seen. The returned function stops watching.
func Watch(s *Settings, pub *styles.Publisher) (func() error, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	file := filepath.Clean(s.Filename())
	if err := w.Add(filepath.Dir(file)); err != nil {
		w.Close()
		return nil, err
	}
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != file {
					continue
				}
				if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
					continue
				}
				logx.Debug("theme: settings file changed", "file", file)
				if errors.Log(s.Load()) != nil {
					continue
				}
				errors.Log(s.Apply(pub))
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				errors.Log(err)
			}
		}
	}()
	return w.Close, nil
}
