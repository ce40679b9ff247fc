package utctime

import "errors"

// Sentinel errors for this package.
// Use errors.Is() for matching - never compare error strings.
var (
	// ErrNonUTCTimestamp is returned by the strict constructor when the
	// time.Time it receives is not in time.UTC. It indicates a caller bug.
	ErrNonUTCTimestamp = errors.New("timestamp is not UTC")

	// ErrMalformedNumber is returned when epoch or tick text is not the
	// decimal form of a signed 64-bit integer.
	ErrMalformedNumber = errors.New("malformed number")

	// ErrOutOfRange is returned by the strict constructor when the time.Time
	// lies outside [MinTime, MaxTime] and has no tick representation.
	ErrOutOfRange = errors.New("timestamp outside tick range")
)
