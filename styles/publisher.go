// Copyright (c) 2026, Hueshift Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import (
	"sync"
	"time"

	"github.com/hueshift/hueshift/base/errors"
	"github.com/hueshift/hueshift/palette"
)

// DefaultWindow is the default debounce window of a [Publisher]:
// publishes arriving within it are coalesced into one update.
const DefaultWindow = 100 * time.Millisecond

// Update is one published palette, as delivered to listeners.
type Update struct {

	// Seed is the seed hex color the palette was derived from
	Seed string

	// Dark is whether the dark scheme was applied
	Dark bool

	// Palette is the derived palette with the scheme applied
	Palette *palette.Palette

	// Vars are the style variables for the palette
	Vars map[string]string
}

// Publisher derives palettes from published seeds and delivers the
// resulting style variables to registered listeners. Rapid successive
// publishes within the debounce window are coalesced into one update
// carrying the last seed. It is safe for concurrent use.
type Publisher struct {
	mu        sync.Mutex
	window    time.Duration
	cache     *Cache
	listeners map[int]func(Update)
	nextID    int
	timer     *time.Timer

	pendingSeed string
	pendingDark bool
	hasPending  bool
	closed      bool
}

// Option configures a [Publisher].
type Option func(*Publisher)

// WithWindow sets the debounce window. A zero or negative window makes
// every publish synchronous, which tests rely on.
func WithWindow(d time.Duration) Option {
	return func(p *Publisher) {
		p.window = d
	}
}

// WithCacheSize sets the capacity of the palette cache.
func WithCacheSize(n int) Option {
	return func(p *Publisher) {
		p.cache = NewCache(n)
	}
}

// NewPublisher returns a new [Publisher] with
// the default window and cache size.
func NewPublisher(opts ...Option) *Publisher {
	p := &Publisher{
		window:    DefaultWindow,
		cache:     NewCache(DefaultCacheSize),
		listeners: map[int]func(Update){},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// OnUpdate registers a listener called on every delivered update.
// It returns a function that unsubscribes the listener. Listeners are
// called outside the publisher lock and must not assume any ordering
// relative to other listeners.
func (p *Publisher) OnUpdate(fn func(Update)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = fn
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.listeners, id)
	}
}

// Publish schedules an update for the given seed and scheme. Within
// the debounce window, later publishes replace earlier pending ones;
// the update goes out when the window elapses with no new publish.
func (p *Publisher) Publish(seed string, dark bool) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.pendingSeed = seed
	p.pendingDark = dark
	p.hasPending = true
	if p.window <= 0 {
		p.mu.Unlock()
		p.Flush()
		return
	}
	if p.timer == nil {
		p.timer = time.AfterFunc(p.window, p.Flush)
	} else {
		p.timer.Reset(p.window)
	}
	p.mu.Unlock()
}

// Flush delivers any pending update immediately. Derivation failures
// (a malformed pending seed) are logged and drop the update.
func (p *Publisher) Flush() {
	p.mu.Lock()
	if !p.hasPending || p.closed {
		p.mu.Unlock()
		return
	}
	seed := p.pendingSeed
	dark := p.pendingDark
	p.hasPending = false
	if p.timer != nil {
		p.timer.Stop()
	}
	pal, err := p.cache.Palette(seed)
	if err != nil {
		p.mu.Unlock()
		errors.Log(err)
		return
	}
	pal = pal.Scheme(dark)
	vars, err := Vars(pal)
	if err != nil {
		p.mu.Unlock()
		errors.Log(err)
		return
	}
	fns := make([]func(Update), 0, len(p.listeners))
	for _, fn := range p.listeners {
		fns = append(fns, fn)
	}
	p.mu.Unlock()

	up := Update{Seed: seed, Dark: dark, Palette: pal, Vars: vars}
	for _, fn := range fns {
		fn(up)
	}
}

// Close discards any pending update and stops the publisher;
// subsequent publishes are ignored.
func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.hasPending = false
	if p.timer != nil {
		p.timer.Stop()
	}
}
