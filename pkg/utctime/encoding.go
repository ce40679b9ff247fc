package utctime

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"time"
)

// ---------------------------------------------------------------------
// JSON / TEXT
// ---------------------------------------------------------------------

// MarshalJSON encodes i as a JSON number holding its tick count.
func (i Instant) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, i.ticks, 10), nil
}

// UnmarshalJSON decodes a JSON number holding a tick count. JSON null
// leaves i unchanged.
func (i *Instant) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	ticks, err := ParseEpoch(string(data))
	if err != nil {
		return fmt.Errorf("decode instant: %w", err)
	}
	i.ticks = ticks
	return nil
}

// MarshalText encodes i as its decimal tick count.
func (i Instant) MarshalText() ([]byte, error) {
	return strconv.AppendInt(nil, i.ticks, 10), nil
}

// UnmarshalText decodes a decimal tick count.
func (i *Instant) UnmarshalText(text []byte) error {
	ticks, err := ParseEpoch(string(text))
	if err != nil {
		return fmt.Errorf("decode instant: %w", err)
	}
	i.ticks = ticks
	return nil
}

// ---------------------------------------------------------------------
// SQL INTERFACES
// ---------------------------------------------------------------------

// Value implements driver.Valuer. Instants are stored as int64 ticks.
func (i Instant) Value() (driver.Value, error) {
	return i.ticks, nil
}

// Scan implements sql.Scanner. It accepts int64 ticks, decimal tick text,
// and time.Time values, which are coerced to UTC. NULL scans as the zero
// Instant.
func (i *Instant) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*i = Instant{}
		return nil
	case int64:
		i.ticks = v
		return nil
	case []byte:
		return i.UnmarshalText(v)
	case string:
		return i.UnmarshalText([]byte(v))
	case time.Time:
		*i = Coerce(v)
		return nil
	default:
		return fmt.Errorf("scan instant: unsupported type %T", value)
	}
}
