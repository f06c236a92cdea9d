package models

import (
	"encoding/json"
	"time"
)

// TimeLayout is the wire format for created_at in the store file.
const TimeLayout = "2006-01-02 15:04:05"

// Timestamp wraps time.Time so creation times serialize as a plain
// "YYYY-MM-DD HH:MM:SS" string instead of RFC 3339.
type Timestamp struct {
	time.Time
}

// Now returns the current local time truncated to second resolution.
func Now() Timestamp {
	return Timestamp{time.Now().Truncate(time.Second)}
}

// NewTimestamp wraps an explicit time value. Tests use this to pin clocks.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(TimeLayout))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.ParseInLocation(TimeLayout, s, time.Local)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) String() string {
	return t.Format(TimeLayout)
}
