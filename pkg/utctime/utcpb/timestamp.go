// Package utcpb converts instants to and from protobuf well-known Timestamps.
package utcpb

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/aelexs/utctime/pkg/utctime"
)

// ErrNilTimestamp is returned when decoding a nil Timestamp.
var ErrNilTimestamp = errors.New("nil timestamp")

// ToTimestamp converts i to a Timestamp. Tick precision is preserved since
// Timestamp carries nanoseconds. Instants outside 0001-01-01 to 9999-12-31
// produce a Timestamp that fails CheckValid.
func ToTimestamp(i utctime.Instant) *timestamppb.Timestamp {
	return timestamppb.New(i.Time())
}

// FromTimestamp converts a valid Timestamp to an Instant. Nanoseconds below
// tick resolution are truncated.
func FromTimestamp(ts *timestamppb.Timestamp) (utctime.Instant, error) {
	if ts == nil {
		return utctime.Instant{}, ErrNilTimestamp
	}
	if err := ts.CheckValid(); err != nil {
		return utctime.Instant{}, fmt.Errorf("invalid timestamp: %w", err)
	}
	return utctime.New(ts.AsTime())
}
