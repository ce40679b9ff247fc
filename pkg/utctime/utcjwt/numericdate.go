// Package utcjwt bridges instants and providers with golang-jwt.
package utcjwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aelexs/utctime/pkg/utctime"
)

// ToNumericDate converts i to a JWT NumericDate. The date is truncated to
// jwt.TimePrecision (one second by default) when it is serialized.
func ToNumericDate(i utctime.Instant) *jwt.NumericDate {
	return jwt.NewNumericDate(i.Time())
}

// FromNumericDate converts a NumericDate to an Instant. Decoded claims carry
// local-zone times, which are normalized to UTC. A nil date reports false.
func FromNumericDate(d *jwt.NumericDate) (utctime.Instant, bool) {
	if d == nil {
		return utctime.Instant{}, false
	}
	return utctime.FromOffset(d.Time), true
}

// IssuedAt returns the current instant of p as a NumericDate.
func IssuedAt(p utctime.Provider) *jwt.NumericDate {
	return ToNumericDate(p.CurrentInstant())
}

// ExpiresAt returns the current instant of p plus ttl as a NumericDate.
func ExpiresAt(p utctime.Provider, ttl time.Duration) *jwt.NumericDate {
	return ToNumericDate(p.CurrentInstant().Add(ttl))
}

// WithProvider makes the parser validate exp, nbf and iat against p instead
// of the system clock.
func WithProvider(p utctime.Provider) jwt.ParserOption {
	return jwt.WithTimeFunc(func() time.Time {
		return p.CurrentInstant().Time()
	})
}
