package journal

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	// DayLayout keys once-a-day state such as the last worry alert.
	DayLayout = "2006-01-02"
	// ClockLayout is a time of day as typed by the user.
	ClockLayout = "15:04"
	// LabelLayout is the short chart label, e.g. "Mar 3".
	LabelLayout = "Jan 2"
)

func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Timestamp is an instant stored as an RFC 3339 string. An empty string
// reads back as the zero time. A value that does not parse also reads back
// as the zero time, and its original JSON is written out again unchanged so
// the entry holding it survives the next save.
type Timestamp struct {
	time.Time

	raw string
}

func Now(now time.Time) Timestamp {
	return Timestamp{Time: now}
}

func (t Timestamp) SameDay(then time.Time) bool {
	ty, tm, td := t.Local().Date()
	y, m, d := then.Local().Date()
	return ty == y && tm == m && td == d
}

// Raw is the stored text of a timestamp that did not parse, or "".
func (t Timestamp) Raw() string {
	return t.raw
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		if t.raw != "" {
			return []byte(t.raw), nil
		}
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t.UTC().Format(time.RFC3339Nano))), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	t.Time, t.raw = time.Time{}, ""
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		if !json.Valid(b) {
			return err
		}
		t.raw = string(b)
		return nil
	}
	if timestamp == "" {
		return nil
	}
	parsed, err := ParseTime(timestamp)
	if err != nil {
		t.raw = string(b)
		return nil
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}

// DayKey formats now as the calendar-day key used for once-a-day gating.
func DayKey(now time.Time) string {
	return now.Format(DayLayout)
}

// ParseClock validates a HH:MM time of day.
func ParseClock(v string) (hour, minute int, err error) {
	t, err := time.Parse(ClockLayout, v)
	if err != nil {
		return 0, 0, fmt.Errorf("journal: invalid time of day %q, want HH:MM", v)
	}
	return t.Hour(), t.Minute(), nil
}
