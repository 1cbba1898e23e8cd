package scheduling

import (
	"fmt"
	"time"
)

// timeOfDayLayout is the clock-time format shift templates use ("HH:MM:SS")
const timeOfDayLayout = "15:04:05"

// ParseTimeOfDay validates a template clock time string
func ParseTimeOfDay(s string) (time.Time, error) {
	t, err := time.Parse(timeOfDayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time of day %q: %w", s, err)
	}
	return t, nil
}

// ResolveWindow composes a template's local start/end clock times with a
// calendar date into a (start, end) instant pair. Both clock times are read
// on the same civil date in UTC; when the end does not land strictly after
// the start the shift wraps overnight and the end advances by 24 hours.
//
// Empty clock times resolve to midnight, so a full-day template with no
// times yields the whole civil day.
func ResolveWindow(date time.Time, startOfDay, endOfDay string) (time.Time, time.Time, error) {
	start, err := composeInstant(date, startOfDay)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := composeInstant(date, endOfDay)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if !end.After(start) {
		end = end.Add(24 * time.Hour)
	}

	return start, end, nil
}

func composeInstant(date time.Time, clock string) (time.Time, error) {
	if clock == "" {
		return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := ParseTimeOfDay(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
}

// DaysInMonth returns the number of calendar days in a month
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
