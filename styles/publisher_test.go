// Copyright (c) 2026, Hueshift Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collector accumulates delivered updates.
type collector struct {
	mu      sync.Mutex
	updates []Update
}

func (c *collector) collect(u Update) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updates = append(c.updates, u)
}

func (c *collector) get() []Update {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Update(nil), c.updates...)
}

func TestPublishSynchronous(t *testing.T) {
	pub := NewPublisher(WithWindow(0))
	defer pub.Close()
	var col collector
	unsub := pub.OnUpdate(col.collect)
	defer unsub()

	pub.Publish("#3b82f6", false)
	ups := col.get()
	require.Len(t, ups, 1)
	assert.Equal(t, "#3b82f6", ups[0].Seed)
	assert.False(t, ups[0].Dark)
	assert.Equal(t, "#3b82f6", ups[0].Palette.Primary)
	assert.Equal(t, "217 91% 60%", ups[0].Vars["--primary"])
}

func TestPublishCoalescing(t *testing.T) {
	pub := NewPublisher(WithWindow(20 * time.Millisecond))
	defer pub.Close()
	var col collector
	unsub := pub.OnUpdate(col.collect)
	defer unsub()

	pub.Publish("#ff0000", false)
	pub.Publish("#00ff00", false)
	pub.Publish("#0000ff", true)

	assert.Eventually(t, func() bool {
		return len(col.get()) == 1
	}, time.Second, 5*time.Millisecond)

	time.Sleep(50 * time.Millisecond) // no further deliveries
	ups := col.get()
	require.Len(t, ups, 1)
	assert.Equal(t, "#0000ff", ups[0].Seed)
	assert.True(t, ups[0].Dark)
}

func TestFlush(t *testing.T) {
	pub := NewPublisher(WithWindow(time.Hour))
	defer pub.Close()
	var col collector
	unsub := pub.OnUpdate(col.collect)
	defer unsub()

	pub.Publish("#3b82f6", false)
	assert.Empty(t, col.get())
	pub.Flush()
	require.Len(t, col.get(), 1)

	// nothing pending: flush is a no-op
	pub.Flush()
	assert.Len(t, col.get(), 1)
}

func TestUnsubscribe(t *testing.T) {
	pub := NewPublisher(WithWindow(0))
	defer pub.Close()
	var col collector
	unsub := pub.OnUpdate(col.collect)

	pub.Publish("#3b82f6", false)
	require.Len(t, col.get(), 1)

	unsub()
	pub.Publish("#ff0000", false)
	assert.Len(t, col.get(), 1)
}

func TestClose(t *testing.T) {
	pub := NewPublisher(WithWindow(0))
	var col collector
	unsub := pub.OnUpdate(col.collect)
	defer unsub()

	pub.Close()
	pub.Publish("#3b82f6", false)
	pub.Flush()
	assert.Empty(t, col.get())
}

func TestPublishInvalidSeedDropped(t *testing.T) {
	pub := NewPublisher(WithWindow(0), WithCacheSize(8))
	defer pub.Close()
	var col collector
	unsub := pub.OnUpdate(col.collect)
	defer unsub()

	pub.Publish("#nothex", false)
	assert.Empty(t, col.get())

	pub.Publish("#3b82f6", false)
	assert.Len(t, col.get(), 1)
}
