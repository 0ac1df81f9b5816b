// Copyright (c) 2026, Hueshift Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx provides TOML input / output helper functions
// for opening and saving values to files.
package tomlx

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Open reads the given value from the given TOML file.
func Open(v any, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return Read(v, bufio.NewReader(f))
}

// Read reads the given value from the given reader in TOML format.
func Read(v any, r io.Reader) error {
	return toml.NewDecoder(r).Decode(v)
}

// Save writes the given value to the given TOML file,
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

// Write writes the given value to the given writer in TOML format.
func Write(v any, w io.Writer) error {
	return toml.NewEncoder(w).Encode(v)
}
