package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Flex is the canonical string-typed entity attribute. The backing stores
// were migrated from several sources, so the same logical column may arrive
// as a string, a number, a boolean or a date depending on the record's age.
// Flex absorbs every representation into one string value and never fails
// to decode; a value it cannot make sense of becomes the empty string.
type Flex string

// UnmarshalJSON accepts any JSON value and normalizes it to a string:
// strings pass through, numbers keep their literal formatting, booleans
// become lowercase "true"/"false", null becomes "", and arrays/objects
// are kept as their raw JSON text.
func (f *Flex) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*f = ""
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = ""
			return nil
		}
		*f = Flex(s)
	case 'n': // null
		*f = ""
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			*f = ""
			return nil
		}
		*f = Flex(strconv.FormatBool(b))
	default:
		// Numbers, arrays and objects keep their source text.
		*f = Flex(data)
	}
	return nil
}

// MarshalJSON is the identity direction: a Flex value is written back out
// as a plain string.
func (f Flex) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

func (f Flex) String() string { return string(f) }

// IsEmpty reports whether the attribute was absent or unreadable.
func (f Flex) IsEmpty() bool { return f == "" }

// Bool parses the attribute as a boolean, accepting "true"/"false" in any
// case as well as "1"/"0". The second result is false when the value does
// not parse.
func (f Flex) Bool() (bool, bool) {
	if b, err := strconv.ParseBool(string(f)); err == nil {
		return b, true
	}
	switch strings.ToLower(string(f)) {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	}
	return false, false
}

// Int parses the attribute as an integer.
func (f Flex) Int() (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(string(f)))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Decimal parses the attribute as an exact decimal. Records whose value
// does not parse are meant to be excluded from range filters, never to
// raise an error.
func (f Flex) Decimal() (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(string(f)))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// flexTimeLayouts are the formats observed across the migrated sources.
var flexTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006 15:04",
	"1/2/2006",
}

// Time parses the attribute as a timestamp, trying the known source
// formats in order.
func (f Flex) Time() (time.Time, bool) {
	s := strings.TrimSpace(string(f))
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range flexTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
