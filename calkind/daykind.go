// Package calkind defines the closed set of day classifications a
// generated calendar assigns to each date of the year.
package calkind

import "strings"

// DayKind is a closed enumeration of the five ways a calendar day can be
// classified.
type DayKind string

const (
	// WORK is an ordinary working day.
	WORK DayKind = "work"
	// ORDERING is the first working day following any rest day.
	ORDERING DayKind = "ordering"
	// REST is a non-holiday rest day; always occurs in pairs.
	REST DayKind = "rest"
	// HOLIDAY is a rest-granting holiday.
	HOLIDAY DayKind = "holiday"
	// WORKING_HOLIDAY is the first day of a two-day holiday block, treated
	// as working.
	WORKING_HOLIDAY DayKind = "working_holiday"
)

// IsEmpty reports whether the DayKind has not been set.
func (k DayKind) IsEmpty() bool {
	return string(k) == ""
}

// String returns the lowercase string value of the DayKind.
func (k DayKind) String() string {
	return strings.ToLower(string(k))
}

// IsValid reports whether k is one of the five defined variants.
func (k DayKind) IsValid() bool {
	switch k {
	case WORK, ORDERING, REST, HOLIDAY, WORKING_HOLIDAY:
		return true
	default:
		return false
	}
}

// IsWorkDay reports whether k counts as a working day: WORK, ORDERING, or
// WORKING_HOLIDAY.
func (k DayKind) IsWorkDay() bool {
	switch k {
	case WORK, ORDERING, WORKING_HOLIDAY:
		return true
	default:
		return false
	}
}

// IsRestDay reports whether k counts as a rest day: REST or HOLIDAY.
func (k DayKind) IsRestDay() bool {
	switch k {
	case REST, HOLIDAY:
		return true
	default:
		return false
	}
}
