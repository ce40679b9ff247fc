package utctime

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Instant is a point in time that is always expressed in UTC.
// Always valid in memory - construct with New, FromOffset, FromTicks or
// Coerce. The zero value is 0001-01-01T00:00:00Z.
//
// Instants are comparable with == and may be used as map keys; two
// instants are equal exactly when their tick counts are equal.
type Instant struct {
	ticks int64
}

// CoercionFunc observes a coercion performed by Coerce. It receives the
// Kind of the time.Time before it was converted to UTC.
type CoercionFunc func(original Kind)

// offsetZone is the explicit zero offset used by OffsetTime.
var offsetZone = time.FixedZone("+00:00", 0)

// New creates an Instant from a time.Time whose location is time.UTC.
// Any other location fails with ErrNonUTCTimestamp; use FromOffset or
// Coerce to accept zoned input. Times outside [MinTime, MaxTime] fail
// with ErrOutOfRange.
func New(t time.Time) (Instant, error) {
	if k := KindOf(t); k != KindUTC {
		return Instant{}, fmt.Errorf("%w: got %s time %s", ErrNonUTCTimestamp, k, t.Format(time.RFC3339Nano))
	}
	if !inTickRange(t) {
		return Instant{}, fmt.Errorf("%w: %s", ErrOutOfRange, t.Format(time.RFC3339Nano))
	}
	return Instant{ticks: TicksOf(t)}, nil
}

// MustNew creates an Instant, panicking on non-UTC input. Use only in tests
// and for package-level values.
func MustNew(t time.Time) Instant {
	i, err := New(t)
	if err != nil {
		panic(err)
	}
	return i
}

// FromOffset creates an Instant from a time.Time carrying any location.
// The offset is applied, so this never fails. Times outside
// [MinTime, MaxTime] clamp to the nearest bound.
func FromOffset(t time.Time) Instant {
	return Instant{ticks: clampTicks(t)}
}

// FromTicks creates an Instant from a raw tick count, which is trusted to
// be UTC.
func FromTicks(ticks int64) Instant {
	return Instant{ticks: ticks}
}

// Coerce creates an Instant from any time.Time. Non-UTC input is converted
// to UTC and each non-nil observer is told the original Kind. UTC input is
// wrapped as is and no observer is called. Out-of-range input clamps like
// FromOffset.
func Coerce(t time.Time, onCoerced ...CoercionFunc) Instant {
	if k := KindOf(t); k != KindUTC {
		for _, fn := range onCoerced {
			if fn != nil {
				fn(k)
			}
		}
	}
	return FromOffset(t)
}

// Ticks returns the number of 100ns ticks since 0001-01-01T00:00:00Z.
func (i Instant) Ticks() int64 { return i.ticks }

// IsZero reports whether i is the zero Instant.
func (i Instant) IsZero() bool { return i.ticks == 0 }

// Time returns i as a time.Time in time.UTC.
func (i Instant) Time() time.Time {
	return TimeFromTicks(i.ticks)
}

// OffsetTime returns i in an explicit zero-offset zone. The result names
// an offset rather than the UTC location, so its Kind is KindZoned.
func (i Instant) OffsetTime() time.Time {
	return i.Time().In(offsetZone)
}

// UnixMilli returns i as rounded milliseconds since the Unix epoch.
func (i Instant) UnixMilli() int64 {
	return ToEpochMillis(i.Time())
}

// UnixNano returns i as nanoseconds since the Unix epoch.
func (i Instant) UnixNano() int64 {
	return (i.ticks - UnixEpochTicks) * NanosecondsPerTick
}

// Compare returns -1 if i is before other, +1 if after, 0 if equal.
func (i Instant) Compare(other Instant) int {
	switch {
	case i.ticks < other.ticks:
		return -1
	case i.ticks > other.ticks:
		return 1
	default:
		return 0
	}
}

// Equal reports whether i and other have the same tick count.
func (i Instant) Equal(other Instant) bool { return i.ticks == other.ticks }

// Before reports whether i is strictly earlier than other.
func (i Instant) Before(other Instant) bool { return i.ticks < other.ticks }

// After reports whether i is strictly later than other.
func (i Instant) After(other Instant) bool { return i.ticks > other.ticks }

// Add returns i+d. Sub-tick parts of d are truncated and the result
// saturates at MinTime and MaxTime.
func (i Instant) Add(d time.Duration) Instant {
	delta := int64(d) / NanosecondsPerTick
	switch {
	case delta > 0 && i.ticks > math.MaxInt64-delta:
		return Instant{ticks: math.MaxInt64}
	case delta < 0 && i.ticks < math.MinInt64-delta:
		return Instant{ticks: math.MinInt64}
	}
	return Instant{ticks: i.ticks + delta}
}

// Sub returns i-other, saturating like time.Time.Sub.
func (i Instant) Sub(other Instant) time.Duration {
	return i.Time().Sub(other.Time())
}

// Hash returns a hash of the tick count. Equal instants hash identically.
func (i Instant) Hash() uint64 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(i.ticks))
	return xxhash.Sum64(buf[:])
}

// String formats i as RFC 3339 with up to nanosecond precision. The output
// parses back with time.Parse(time.RFC3339Nano, ...).
func (i Instant) String() string {
	return i.Time().Format(time.RFC3339Nano)
}

// CompareNullable orders optional instants. A nil instant sorts before
// every non-nil one; two nils compare equal.
func CompareNullable(a, b *Instant) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return a.Compare(*b)
	}
}

// EqualNullable reports whether two optional instants are equal. Two nils
// are equal; a nil never equals a non-nil instant.
func EqualNullable(a, b *Instant) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
