package caltime

import (
	"time"

	"github.com/teambition/rrule-go"
)

// RestWeekendRRule builds an RFC 5545 recurrence rule describing the
// Saturday-Sunday free-weekend cadence a generated calendar aims for:
// one occurrence per month, anchored to Saturdays, for the given year.
// This does not replace the generator's own weekend tracking; it gives
// downstream calendar-feed consumers an RRULE description of the rule
// without re-deriving it from a *schedule.Calendar value.
func RestWeekendRRule(year int) (*rrule.RRule, error) {
	dtstart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)

	return rrule.NewRRule(rrule.ROption{
		Freq:      rrule.MONTHLY,
		Byweekday: []rrule.Weekday{TimeWeekdayToRRuleWeekday(time.Saturday)},
		Bysetpos:  []int{1},
		Dtstart:   dtstart,
		Until:     until,
	})
}
