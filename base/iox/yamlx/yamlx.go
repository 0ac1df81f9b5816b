// Copyright (c) 2026, Hueshift Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx provides YAML input / output helper functions
// for opening and saving values to files.
package yamlx

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Open reads the given value from the given YAML file.
func Open(v any, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return Read(v, bufio.NewReader(f))
}

// Read reads the given value from the given reader in YAML format.
func Read(v any, r io.Reader) error {
	return yaml.NewDecoder(r).Decode(v)
}

// Save writes the given value to the given YAML file,
// creating any necessary parent directories.
func Save(v any, filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	if err := Write(v, bw); err != nil {
		return err
	}
	return bw.Flush()
}

// Write writes the given value to the given writer in YAML format.
func Write(v any, w io.Writer) error {
	e := yaml.NewEncoder(w)
	if err := e.Encode(v); err != nil {
		return err
	}
	return e.Close()
}
