package utctime

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

// Tick resolution constants.
const (
	NanosecondsPerTick  = 100
	TicksPerMillisecond = 10_000
	TicksPerSecond      = 10_000_000

	// UnixEpochTicks is the tick count of 1970-01-01T00:00:00Z.
	UnixEpochTicks = unixEpochSeconds * TicksPerSecond
)

// Seconds between 0001-01-01T00:00:00Z and the Unix epoch.
const unixEpochSeconds = 62_135_596_800

// Bounds of the int64 tick range. Times outside [MinTime, MaxTime] have no
// tick representation.
var (
	MinTime = TimeFromTicks(math.MinInt64)
	MaxTime = TimeFromTicks(math.MaxInt64)
)

// maxTimeExclusive is the first instant whose floor tick count overflows.
var maxTimeExclusive = MaxTime.Add(NanosecondsPerTick)

// inTickRange reports whether t lies within [MinTime, MaxTime] at tick
// resolution.
func inTickRange(t time.Time) bool {
	return !t.Before(MinTime) && t.Before(maxTimeExclusive)
}

// clampTicks returns the tick count of t, saturated at the range bounds.
func clampTicks(t time.Time) int64 {
	switch {
	case t.Before(MinTime):
		return math.MinInt64
	case !t.Before(maxTimeExclusive):
		return math.MaxInt64
	default:
		return TicksOf(t)
	}
}

// TicksOf returns the number of ticks elapsed between 0001-01-01T00:00:00Z
// and t. Any remainder below one tick is discarded, so the result is the
// floor of t at 100ns resolution. The location of t does not matter.
//
// The result wraps for times outside [MinTime, MaxTime]; the Instant
// constructors reject or clamp such input instead.
func TicksOf(t time.Time) int64 {
	secs := t.Unix() + unixEpochSeconds
	return secs*TicksPerSecond + int64(t.Nanosecond())/NanosecondsPerTick
}

// TimeFromTicks returns the UTC time that is ticks 100ns units after
// 0001-01-01T00:00:00Z. Negative tick counts yield times before year 1.
func TimeFromTicks(ticks int64) time.Time {
	secs := ticks / TicksPerSecond
	rem := ticks % TicksPerSecond
	if rem < 0 {
		secs--
		rem += TicksPerSecond
	}
	return time.Unix(secs-unixEpochSeconds, rem*NanosecondsPerTick).UTC()
}

// ToEpochMillis returns the milliseconds elapsed between the Unix epoch and
// t, rounded to the nearest millisecond. Ties round half to even, so 1.5ms
// becomes 2, 2.5ms becomes 2 and -1.5ms becomes -2. Sub-tick nanoseconds
// are dropped before rounding. Like time.Time.UnixMilli, the result is
// undefined when the millisecond count does not fit an int64.
func ToEpochMillis(t time.Time) int64 {
	// frac is the non-negative tick offset within the second, so q is the
	// floor of the millisecond count.
	frac := int64(t.Nanosecond()) / NanosecondsPerTick
	q := t.Unix()*1000 + frac/TicksPerMillisecond
	r := frac % TicksPerMillisecond

	const half = TicksPerMillisecond / 2
	if r > half || (r == half && q%2 != 0) {
		q++
	}
	return q
}

// ToEpochNanos returns the nanoseconds elapsed between the Unix epoch and t
// at tick resolution. Sub-tick nanoseconds are truncated.
//
// Like time.Time.UnixNano, the result is undefined outside the years
// 1678 to 2262.
func ToEpochNanos(t time.Time) int64 {
	return (TicksOf(t) - UnixEpochTicks) * NanosecondsPerTick
}

// FromEpochMillis returns the UTC time ms milliseconds after the Unix epoch.
func FromEpochMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// FromEpochMillisString parses s as epoch milliseconds.
func FromEpochMillisString(s string) (time.Time, error) {
	ms, err := ParseEpoch(s)
	if err != nil {
		return time.Time{}, err
	}
	return FromEpochMillis(ms), nil
}

// FromEpochNanos returns the UTC time ns nanoseconds after the Unix epoch.
// The nanosecond count is divided by NanosecondsPerTick first; remainders
// below one tick are truncated toward zero and lost.
func FromEpochNanos(ns int64) time.Time {
	return TimeFromTicks(UnixEpochTicks + ns/NanosecondsPerTick)
}

// FromEpochNanosString parses s as epoch nanoseconds.
func FromEpochNanosString(s string) (time.Time, error) {
	ns, err := ParseEpoch(s)
	if err != nil {
		return time.Time{}, err
	}
	return FromEpochNanos(ns), nil
}

// ParseEpoch parses the decimal text of a signed 64-bit integer. Any other
// input, including surrounding whitespace, fails with ErrMalformedNumber.
// The strconv cause (strconv.ErrSyntax or strconv.ErrRange) is also
// matchable with errors.Is.
func ParseEpoch(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, fmt.Errorf("parse %q: %w: %w", s, ErrMalformedNumber, err)
	}
	return v, nil
}
