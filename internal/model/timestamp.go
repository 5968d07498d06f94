package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// TimestampLayout is the canonical wire format for structured dates,
// matching what the migrated documents carry.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp is the one place the string-everything contract is broken:
// created_date/updated_date need real date arithmetic (range queries,
// "recent" filters), so they decode into a structured value. A Timestamp
// decodes from either a native epoch-milliseconds datetime or any of the
// string formats seen in the source data; fields use *Timestamp so an
// absent date stays null.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t as a Timestamp in UTC.
func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{Time: t.UTC()}
}

// ParseTimestamp parses a string-formatted date, returning nil when the
// value is empty or does not match any known format.
func ParseTimestamp(s string) *Timestamp {
	if t, ok := Flex(s).Time(); ok {
		return NewTimestamp(t)
	}
	return nil
}

// UnmarshalJSON accepts an RFC3339-style string or an epoch-milliseconds
// number. Unparsable input degrades to the zero value rather than failing
// the whole record.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			if parsed, ok := Flex(s).Time(); ok {
				t.Time = parsed.UTC()
			}
		}
		return nil
	}
	if ms, err := strconv.ParseInt(string(data), 10, 64); err == nil {
		t.Time = time.UnixMilli(ms).UTC()
	}
	return nil
}

// MarshalJSON re-encodes the date in the canonical wire format.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(TimestampLayout))
}
