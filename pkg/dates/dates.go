// Package dates holds the pure date-window math: effective tracking day,
// Sunday-based week windows, month keys, and midnight arithmetic. All
// computation is calendar arithmetic in local time, never string slicing.
package dates

import "time"

const (
	// LayoutDay is the canonical key format for a calendar date.
	LayoutDay = "2006-01-02"
	// LayoutMonth is the canonical key format for a calendar month.
	LayoutMonth = "2006-01"
)

// DayKey renders t as a YYYY-MM-DD key in local time.
func DayKey(t time.Time) string {
	return t.Local().Format(LayoutDay)
}

// MonthKey renders t as a YYYY-MM key in local time.
func MonthKey(t time.Time) string {
	return t.Local().Format(LayoutMonth)
}

// ParseDay parses a YYYY-MM-DD key into a local midnight time.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(LayoutDay, s, time.Local)
}

// Midnight truncates t to the start of its local calendar day.
func Midnight(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EffectiveDay returns the date a user action is attributed to. At or
// after the cutoff hour the action belongs to the next day, so an entry
// made late in the evening targets tomorrow. time.Date normalizes
// day+1 across month and year boundaries.
func EffectiveDay(now time.Time, cutoffHour int) time.Time {
	now = now.Local()
	d := now.Day()
	if now.Hour() >= cutoffHour {
		d++
	}
	return time.Date(now.Year(), now.Month(), d, 0, 0, 0, 0, now.Location())
}

// WeekWindow returns the 7 consecutive dates starting from the most
// recent Sunday on or before now.
func WeekWindow(now time.Time) []time.Time {
	sunday := Midnight(now).AddDate(0, 0, -int(now.Local().Weekday()))
	week := make([]time.Time, 7)
	for i := range week {
		week[i] = sunday.AddDate(0, 0, i)
	}
	return week
}

// IsOnOrAfter reports whether now's calendar date is on or after the
// threshold's calendar date.
func IsOnOrAfter(now, threshold time.Time) bool {
	return !Midnight(now).Before(Midnight(threshold))
}

// NextMidnight returns the start of the day after now.
func NextMidnight(now time.Time) time.Time {
	return Midnight(now).AddDate(0, 0, 1)
}

// UntilMidnight returns the duration from now until the next local
// midnight.
func UntilMidnight(now time.Time) time.Duration {
	return NextMidnight(now).Sub(now)
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	a, b = a.Local(), b.Local()
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// SameMonth reports whether a and b fall in the same local calendar month.
func SameMonth(a, b time.Time) bool {
	a, b = a.Local(), b.Local()
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// DaysIn returns the number of days in t's month.
func DaysIn(t time.Time) int {
	t = t.Local()
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// StartDay returns the weekday of the first day of t's month.
func StartDay(t time.Time) time.Weekday {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).Weekday()
}
