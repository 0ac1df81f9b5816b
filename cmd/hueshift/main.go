// Copyright (c) 2026, Hueshift Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hueshift derives coordinated UI color palettes from a single
// seed accent color and publishes them as style variables.
package main

import "github.com/hueshift/hueshift/cmd/hueshift/cmd"

func main() {
	cmd.Execute()
}
