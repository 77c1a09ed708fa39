package calkind

import "time"

// Day pairs a calendar date with its DayKind classification.
type Day struct {
	Date time.Time
	Kind DayKind
}

// IsWorkDay reports whether this day's kind counts as a working day.
func (d Day) IsWorkDay() bool {
	return d.Kind.IsWorkDay()
}

// IsRestDay reports whether this day's kind counts as a rest day.
func (d Day) IsRestDay() bool {
	return d.Kind.IsRestDay()
}

// DateKey returns the YYYY-MM-DD string used to index days by date.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
