// Package utctime provides conversions between calendar time and Unix epoch
// offsets, and Instant, a value type that is always expressed in UTC.
//
// Instants are stored as ticks: 100-nanosecond units elapsed since
// 0001-01-01T00:00:00Z in the proleptic Gregorian calendar. The zero Instant
// therefore equals the zero time.Time. The tick count is the canonical
// numeric form used by every encoder in this module.
//
// Everything in this package is immutable and safe for concurrent use.
package utctime
