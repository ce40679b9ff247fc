package utctime

import "time"

// Kind classifies the location a time.Time is expressed in.
type Kind int

const (
	// KindUTC is a time whose location is time.UTC.
	KindUTC Kind = iota
	// KindLocal is a time whose location is time.Local.
	KindLocal
	// KindZoned is a time in any other location, including fixed offsets.
	KindZoned
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindUTC:
		return "utc"
	case KindLocal:
		return "local"
	case KindZoned:
		return "zoned"
	default:
		return "unknown"
	}
}

// KindOf reports the Kind of t.
//
// Only time.UTC counts as UTC. A time.FixedZone with a zero offset is
// KindZoned: it names an offset, not the UTC location.
func KindOf(t time.Time) Kind {
	switch t.Location() {
	case time.UTC:
		return KindUTC
	case time.Local:
		return KindLocal
	default:
		return KindZoned
	}
}
