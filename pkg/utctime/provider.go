package utctime

import "time"

// Clock provides the current wall-clock time. Implementations may be real
// (production) or deterministic (testing).
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the system clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Provider returns the current instant. Depend on Provider instead of
// calling time.Now so tests can substitute a fixed or advanceable source.
type Provider interface {
	CurrentInstant() Instant
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func() Instant

// CurrentInstant returns f().
func (f ProviderFunc) CurrentInstant() Instant { return f() }

type clockProvider struct {
	clock Clock
}

// NewProvider returns a Provider reading from c. Readings in any location
// are normalized to UTC.
func NewProvider(c Clock) Provider {
	return clockProvider{clock: c}
}

func (p clockProvider) CurrentInstant() Instant {
	return FromOffset(p.clock.Now())
}

// SystemProvider reads the system clock.
var SystemProvider = NewProvider(SystemClock{})

// Now returns the current instant from SystemProvider.
func Now() Instant {
	return SystemProvider.CurrentInstant()
}

// NowEpochMillis returns the current instant of p as epoch milliseconds.
func NowEpochMillis(p Provider) int64 {
	return p.CurrentInstant().UnixMilli()
}

// Ensure implementations satisfy their interfaces at compile time.
var (
	_ Clock    = SystemClock{}
	_ Provider = ProviderFunc(nil)
	_ Provider = clockProvider{}
)
