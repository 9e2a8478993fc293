package clock

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ClockLayout is the wire format for wall-clock times.
const ClockLayout = "15:04"

// Clock supplies the current time. Services take a Clock instead of calling
// time.Now so date-sensitive behavior is testable.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns a Clock backed by the real wall clock.
func System() Clock { return systemClock{} }

// Fixed is a Clock pinned to a single instant, for tests.
type Fixed struct {
	Time time.Time
}

func (f Fixed) Now() time.Time { return f.Time }

// FixedAt builds a Fixed clock from a date string and local wall time.
func FixedAt(date string, hour, minute int) Fixed {
	d, err := ParseDate(date)
	if err != nil {
		panic(fmt.Sprintf("clock.FixedAt: %v", err))
	}
	return Fixed{Time: d.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)}
}

// StartOfWeek returns the Sunday on or before t, truncated to local
// midnight. Every date in a Sunday..Saturday span maps to the same value,
// and the function is idempotent.
func StartOfWeek(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// FormatDate renders a time as a calendar date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a calendar date string in the local zone.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// Today returns the clock's current date as a calendar date string.
func Today(c Clock) string {
	return FormatDate(c.Now())
}

// ParseClockTime parses an HH:MM string into minutes past midnight.
func ParseClockTime(s string) (int, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClockTime renders a time's wall-clock component as HH:MM.
func FormatClockTime(t time.Time) string {
	return t.Format(ClockLayout)
}

// MinutesBetween returns the whole minutes from start to end, both HH:MM.
// The result is negative when end precedes start; callers validate the
// ordering before persisting anything.
func MinutesBetween(start, end string) (int, error) {
	s, err := ParseClockTime(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseClockTime(end)
	if err != nil {
		return 0, err
	}
	return e - s, nil
}
