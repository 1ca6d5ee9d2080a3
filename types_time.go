package pricetrack

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimestampFormat is the wire format for timestamps in every persisted table.
// Changing it invalidates historical parsing, so it never does.
const TimestampFormat = "2006-01-02 15:04:05"

// Display formats derived from the timestamp for the ledger's date and time columns.
const (
	DateDisplayFormat = "January 02, 2006"
	TimeDisplayFormat = "03:04 PM"
)

// Timestamp represents an observation instant with second-level granularity.
type Timestamp struct {
	t time.Time
}

// NewTimestamp returns a Timestamp for the given time, truncated to the second.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t: t.Truncate(time.Second)}
}

// Now returns the current instant as a Timestamp.
func Now() Timestamp { return NewTimestamp(time.Now()) }

// ParseTimestamp parses a timestamp in the wire format. It is strict: the
// persisted tables all share one format and a row that deviates is a data
// quality problem, not an alternative spelling.
func ParseTimestamp(str string) (Timestamp, error) {
	t, err := time.Parse(TimestampFormat, str)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q, want format %q: %w", str, TimestampFormat, err)
	}
	return Timestamp{t: t}, nil
}

// MustParseTimestamp is like ParseTimestamp but panics on error.
func MustParseTimestamp(str string) Timestamp {
	ts, err := ParseTimestamp(str)
	if err != nil {
		panic(err.Error())
	}
	return ts
}

// String formats the timestamp in its wire format.
func (ts Timestamp) String() string { return ts.t.Format(TimestampFormat) }

// DateDisplay returns the human readable date column value ("January 02, 2006").
func (ts Timestamp) DateDisplay() string { return ts.t.Format(DateDisplayFormat) }

// TimeDisplay returns the human readable time column value ("03:04 PM").
func (ts Timestamp) TimeDisplay() string { return ts.t.Format(TimeDisplayFormat) }

// IsZero returns true for the zero Timestamp, used as the "absent" watermark.
func (ts Timestamp) IsZero() bool { return ts.t.IsZero() }

// Before reports whether ts is strictly before x.
func (ts Timestamp) Before(x Timestamp) bool { return ts.t.Before(x.t) }

// After reports whether ts is strictly after x.
func (ts Timestamp) After(x Timestamp) bool { return ts.t.After(x.t) }

// Equal reports whether ts and x denote the same instant.
func (ts Timestamp) Equal(x Timestamp) bool { return ts.t.Equal(x.t) }

// Compare returns -1, 0 or 1 comparing ts chronologically with x.
func (ts Timestamp) Compare(x Timestamp) int { return ts.t.Compare(x.t) }

// UnmarshalJSON reads a timestamp from a JSON string in the wire format.
func (ts *Timestamp) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(str)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	str := ts.String()
	return json.Marshal(&str)
}

// check that a Timestamp pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Timestamp)(nil)
var _ json.Unmarshaler = (*Timestamp)(nil)
