package task

import (
	"encoding/json"
	"fmt"
	"time"

	"tableflip.dev/pace/pkg/dates"
)

func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Timestamp wraps time.Time so task dates marshal as RFC3339 strings.
type Timestamp struct {
	time.Time
}

func (t Timestamp) SameDay(then time.Time) bool {
	return dates.SameDay(t.Time, then)
}

func (t Timestamp) SameMonth(then time.Time) bool {
	return dates.SameMonth(t.Time, then)
}

// MonthKey returns the YYYY-MM key of the timestamp's local date.
func (t Timestamp) MonthKey() string {
	return dates.MonthKey(t.Time)
}

// DayKey returns the YYYY-MM-DD key of the timestamp's local date.
func (t Timestamp) DayKey() string {
	return dates.DayKey(t.Time)
}

func (t *Timestamp) MarshalJSON() ([]byte, error) {
	if t == nil || t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t)), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339)
}
