package domain

import (
	"encoding/json"
	"time"
)

// TimestampLayout renders UTC times with millisecond precision,
// e.g. 2017-08-01T12:00:00.000Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp is a service time that always encodes with milliseconds, so
// exports taken at different times diff cleanly.
type Timestamp struct {
	time.Time
}

// TimestampOf converts an optional time. Nil stays nil.
func TimestampOf(t *time.Time) *Timestamp {
	if t == nil {
		return nil
	}
	return &Timestamp{Time: *t}
}

// MarshalJSON encodes the time in UTC using TimestampLayout.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(TimestampLayout))
}

// UnmarshalJSON accepts any RFC 3339 time.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}
