// Package caltime provides the date, ISO-week, and interval arithmetic
// the generator and validator share.
package caltime

import (
	"time"

	"github.com/teambition/rrule-go"
)

// TimeWeekdayToRRuleWeekday converts a time.Weekday to its rrule.Weekday
// equivalent.
func TimeWeekdayToRRuleWeekday(d time.Weekday) rrule.Weekday {
	switch d {
	case time.Sunday:
		return rrule.SU
	case time.Monday:
		return rrule.MO
	case time.Tuesday:
		return rrule.TU
	case time.Wednesday:
		return rrule.WE
	case time.Thursday:
		return rrule.TH
	case time.Friday:
		return rrule.FR
	case time.Saturday:
		return rrule.SA
	default:
		return rrule.MO
	}
}

// IsWeekendByTime reports whether t falls on a Saturday or Sunday.
func IsWeekendByTime(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}

// IsSaturday reports whether t falls on a Saturday.
func IsSaturday(t time.Time) bool {
	return t.Weekday() == time.Saturday
}

// IsSunday reports whether t falls on a Sunday.
func IsSunday(t time.Time) bool {
	return t.Weekday() == time.Sunday
}

// TruncateToDate strips the time-of-day component, normalizing to UTC
// midnight so date arithmetic stays exact regardless of the input's
// original location.
func TruncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
