package models

import (
	"strings"
	"time"
)

// AvailabilityStatus defines the calendar status tags an employee can carry on a date
type AvailabilityStatus string

const (
	// AvailabilityUnavailable marks a soft constraint: the employee prefers not to work
	AvailabilityUnavailable AvailabilityStatus = "unavailable"
	// AvailabilityUnreachable marks a hard constraint: the employee cannot work
	AvailabilityUnreachable AvailabilityStatus = "unreachable"
	// AvailabilityPreferable marks a date the employee wants to work
	AvailabilityPreferable AvailabilityStatus = "preferable"
	// AvailabilityVacation marks approved time off
	AvailabilityVacation AvailabilityStatus = "vacation"
)

// IsValid checks if the AvailabilityStatus is valid
func (s AvailabilityStatus) IsValid() bool {
	switch s {
	case AvailabilityUnavailable, AvailabilityUnreachable, AvailabilityPreferable, AvailabilityVacation:
		return true
	}
	return false
}

// Weekday names used as keys in staffing-target tables and template weekday sets.
// Always lower-case English names.
var weekdayNames = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// WeekdayName returns the canonical lower-case name for a time.Weekday
func WeekdayName(d time.Weekday) string {
	return strings.ToLower(d.String())
}

// IsValidWeekday checks whether name is a canonical weekday key
func IsValidWeekday(name string) bool {
	return weekdayNames[name]
}
