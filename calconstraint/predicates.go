package calconstraint

import (
	"time"

	"github.com/jpfluger/calendario/calholiday"
	"github.com/jpfluger/calendario/calkind"
)

// NeedsRestThisWeek reports whether the ISO week containing d has not
// yet received a completed rest block.
func NeedsRestThisWeek(state *ScheduleState, d time.Time) bool {
	_, week := d.ISOWeek()
	_, ok := state.WeeksWithRest[week]
	return !ok
}

// NeedsWeekendThisMonth reports whether the month containing d has not
// yet received its Saturday-Sunday rest pair.
func NeedsWeekendThisMonth(state *ScheduleState, d time.Time) bool {
	_, ok := state.MonthsWithWeekend[d.Month()]
	return !ok
}

// WouldCreateSundayMondayRest reports whether starting a rest block at
// start would begin on a Sunday, which would carry into an illegal
// Sunday-Monday rest pair.
func WouldCreateSundayMondayRest(start time.Time) bool {
	return start.Weekday() == time.Sunday
}

// CanPlaceRestAt reports whether a 2-day rest block may begin at start:
// start is not a Sunday, neither start nor start+1 is already a holiday,
// and start+2 is not itself a HOLIDAY (which would merge into an
// illegal 3+ day rest run; a WORKING_HOLIDAY at start+2 is fine, since
// it is a working day).
func CanPlaceRestAt(start time.Time, holidays calholiday.HolidayMap) bool {
	if WouldCreateSundayMondayRest(start) {
		return false
	}

	end := start.AddDate(0, 0, 1)
	if holidays.Has(start) || holidays.Has(end) {
		return false
	}

	next := end.AddDate(0, 0, 1)
	return !holidays.IsKind(next, calkind.HOLIDAY)
}

// MaxWorkDaysRemaining returns the number of work days that can still be
// placed before the 7-day work-block cap is hit.
func MaxWorkDaysRemaining(state *ScheduleState) int {
	return 7 - state.CurrentWorkStreak()
}

// IsSaturday reports whether d falls on a Saturday.
func IsSaturday(d time.Time) bool {
	return d.Weekday() == time.Saturday
}
