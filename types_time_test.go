package pricetrack

import (
	"encoding/json"
	"testing"
)

func TestParseTimestamp(t *testing.T) {
	testCases := []struct {
		input   string
		wantErr bool
	}{
		{"2025-01-05 10:30:00", false},
		{"2025-1-5 10:30:00", true},  // single digits are not the wire format
		{"2025-01-05", true},         // date alone is not a timestamp
		{"01/05/2025 10:30:00", true},
		{"", true},
	}
	for _, tc := range testCases {
		_, err := ParseTimestamp(tc.input)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseTimestamp(%q): err = %v, wantErr = %v", tc.input, err, tc.wantErr)
		}
	}
}

func TestTimestamp_String(t *testing.T) {
	ts := MustParseTimestamp("2025-01-05 10:30:00")
	if got := ts.String(); got != "2025-01-05 10:30:00" {
		t.Errorf("String() = %q", got)
	}
}

func TestTimestamp_DisplayForms(t *testing.T) {
	ts := MustParseTimestamp("2025-01-05 14:05:00")
	if got := ts.DateDisplay(); got != "January 05, 2025" {
		t.Errorf("DateDisplay() = %q, want %q", got, "January 05, 2025")
	}
	if got := ts.TimeDisplay(); got != "02:05 PM" {
		t.Errorf("TimeDisplay() = %q, want %q", got, "02:05 PM")
	}
}

func TestTimestamp_Ordering(t *testing.T) {
	early := MustParseTimestamp("2025-01-05 10:30:00")
	late := MustParseTimestamp("2025-01-05 10:30:01")
	if !early.Before(late) || !late.After(early) {
		t.Error("ordering is broken")
	}
	if early.Compare(late) != -1 || late.Compare(early) != 1 || early.Compare(early) != 0 {
		t.Error("Compare is inconsistent with Before/After")
	}
	var zero Timestamp
	if !zero.IsZero() || early.IsZero() {
		t.Error("IsZero is broken")
	}
}

func TestTimestamp_JSONRoundTrip(t *testing.T) {
	ts := MustParseTimestamp("2025-01-05 10:30:00")
	data, err := json.Marshal(ts)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2025-01-05 10:30:00"` {
		t.Errorf("marshaled = %s", data)
	}
	var back Timestamp
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(ts) {
		t.Errorf("roundtrip lost the instant: %s != %s", back, ts)
	}
}
