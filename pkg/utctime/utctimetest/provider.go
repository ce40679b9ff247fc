// Package utctimetest provides test doubles for the utctime package.
package utctimetest

import (
	"sync"
	"time"

	"github.com/aelexs/utctime/pkg/utctime"
)

// FakeProvider is a deterministic, advanceable time source for tests.
// It satisfies both utctime.Provider and utctime.Clock. Use Advance/Set to
// control time progression instead of creating new instances.
type FakeProvider struct {
	mu      sync.Mutex
	current utctime.Instant
}

// NewFakeProvider creates a FakeProvider set to the given instant.
func NewFakeProvider(i utctime.Instant) *FakeProvider {
	return &FakeProvider{current: i}
}

// NewFakeProviderAt creates a FakeProvider set to t, normalized to UTC.
func NewFakeProviderAt(t time.Time) *FakeProvider {
	return NewFakeProvider(utctime.FromOffset(t))
}

// CurrentInstant returns the fake current instant.
func (p *FakeProvider) CurrentInstant() utctime.Instant {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Now returns the fake current instant as a UTC time.Time.
func (p *FakeProvider) Now() time.Time {
	return p.CurrentInstant().Time()
}

// Advance moves the fake provider forward by the given duration.
func (p *FakeProvider) Advance(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = p.current.Add(d)
}

// Set changes the fake provider to a specific instant.
func (p *FakeProvider) Set(i utctime.Instant) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = i
}

// Ensure FakeProvider implements the utctime interfaces at compile time.
var (
	_ utctime.Provider = (*FakeProvider)(nil)
	_ utctime.Clock    = (*FakeProvider)(nil)
)
