// Copyright (c) 2026, Hueshift Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"testing"

	"github.com/hueshift/hueshift/hsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheEviction(t *testing.T) {
	c := NewCache(2)

	a, err := c.Palette("#ff0000")
	require.NoError(t, err)
	_, err = c.Palette("#00ff00")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	// hitting does not derive again
	again, err := c.Palette("#ff0000")
	require.NoError(t, err)
	assert.Same(t, a, again)

	// inserting a third evicts the oldest inserted, not the least
	// recently used
	_, err = c.Palette("#0000ff")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("#ff0000")
	assert.False(t, ok)
	_, ok = c.Get("#00ff00")
	assert.True(t, ok)
	_, ok = c.Get("#0000ff")
	assert.True(t, ok)
}

func TestCacheInvalidSeed(t *testing.T) {
	c := NewCache(0)
	assert.Equal(t, DefaultCacheSize, c.capacity)

	_, err := c.Palette("#nothex")
	assert.ErrorIs(t, err, hsl.ErrInvalidFormat)
	assert.Equal(t, 0, c.Len())
}
