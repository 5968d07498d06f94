package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want string // canonical form, "" means nil
	}{
		{"2024-03-01T10:30:00.000Z", "2024-03-01T10:30:00.000Z"},
		{"2024-03-01T10:30:00Z", "2024-03-01T10:30:00.000Z"},
		{"2024-03-01 10:30:00", "2024-03-01T10:30:00.000Z"},
		{"2024-03-01", "2024-03-01T00:00:00.000Z"},
		{"3/1/2024 10:30", "2024-03-01T10:30:00.000Z"},
		{"", ""},
		{"not a date", ""},
	}

	for _, tt := range tests {
		ts := ParseTimestamp(tt.in)
		if tt.want == "" {
			if ts != nil {
				t.Errorf("ParseTimestamp(%q): got %v, want nil", tt.in, ts)
			}
			continue
		}
		if ts == nil {
			t.Errorf("ParseTimestamp(%q): got nil", tt.in)
			continue
		}
		if got := ts.UTC().Format(TimestampLayout); got != tt.want {
			t.Errorf("ParseTimestamp(%q): got %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestTimestampUnmarshalJSON(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`"2024-03-01T10:30:00.000Z"`), &ts); err != nil {
		t.Fatal(err)
	}
	want := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	if !ts.Equal(want) {
		t.Errorf("string form: got %v, want %v", ts.Time, want)
	}

	// Epoch milliseconds, as stored by the document provider.
	var ms Timestamp
	if err := json.Unmarshal([]byte("1709289000000"), &ms); err != nil {
		t.Fatal(err)
	}
	if !ms.Equal(time.UnixMilli(1709289000000).UTC()) {
		t.Errorf("epoch form: got %v", ms.Time)
	}

	// Unparsable input degrades to the zero value.
	var bad Timestamp
	if err := json.Unmarshal([]byte(`"garbage"`), &bad); err != nil {
		t.Fatal(err)
	}
	if !bad.IsZero() {
		t.Errorf("garbage should decode to zero, got %v", bad.Time)
	}
}

func TestTimestampMarshalJSON(t *testing.T) {
	ts := NewTimestamp(time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC))
	out, err := json.Marshal(ts)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `"2024-03-01T10:30:00.000Z"` {
		t.Errorf("got %s", out)
	}
}

func TestBaseEntityStamps(t *testing.T) {
	var b BaseEntity
	now := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

	b.StampCreated(now)
	if b.CreatedDate == nil || !b.CreatedDate.Equal(now) {
		t.Errorf("created_date: got %v", b.CreatedDate)
	}
	if b.UpdatedDate == nil || !b.UpdatedDate.Equal(now) {
		t.Errorf("updated_date: got %v", b.UpdatedDate)
	}

	later := now.Add(time.Hour)
	b.StampUpdated(later)
	if !b.CreatedDate.Equal(now) {
		t.Error("created_date must not move on update")
	}
	if !b.UpdatedDate.Equal(later) {
		t.Errorf("updated_date: got %v, want %v", b.UpdatedDate, later)
	}
}
