// Package caldecision chooses the length of each work block the
// schedule builder places, steering toward lengths that land the
// following rest on a Saturday when a month still needs its weekend.
package caldecision

import (
	"math/rand"
	"time"

	"github.com/jpfluger/calendario/calconstraint"
	"github.com/jpfluger/calendario/calerr"
	"github.com/jpfluger/calendario/calholiday"
)

// DecideWorkBlockLength chooses a work-block length in [3, 7] that keeps
// the schedule feasible, per spec §4.3. The rng is consulted exactly
// once, after the candidate set is finalized, so runs are deterministic
// under a fixed seed.
func DecideWorkBlockLength(
	state *calconstraint.ScheduleState,
	currentDate time.Time,
	holidays calholiday.HolidayMap,
	rng *rand.Rand,
) (int, *calerr.InternalError) {
	ceiling := calconstraint.MaxWorkDaysRemaining(state)
	if ceiling > 7 {
		ceiling = 7
	}

	var validLengths []int
	for length := 3; length <= ceiling; length++ {
		if isValidWorkLength(state, currentDate, length, holidays) {
			validLengths = append(validLengths, length)
		}
	}

	if len(validLengths) == 0 {
		return 0, calerr.NewInternalError(
			"no valid work length at %s - algorithm error", currentDate.Format("2006-01-02"))
	}

	if calconstraint.NeedsWeekendThisMonth(state, currentDate) {
		var fridayLanding []int
		for _, length := range validLengths {
			if landsOnFriday(currentDate, length, holidays) {
				fridayLanding = append(fridayLanding, length)
			}
		}
		if len(fridayLanding) > 0 {
			return fridayLanding[rng.Intn(len(fridayLanding))], nil
		}
	}

	return validLengths[rng.Intn(len(validLengths))], nil
}

// isValidWorkLength reports whether placing `length` work days starting
// at startDate keeps the schedule feasible: it doesn't exceed the 7-day
// work-block cap, the resulting rest start stays in-year and placeable,
// and - when the current week still needs rest - the rest start stays
// within that same ISO week.
func isValidWorkLength(
	state *calconstraint.ScheduleState,
	startDate time.Time,
	length int,
	holidays calholiday.HolidayMap,
) bool {
	if state.CurrentWorkStreak()+length > 7 {
		return false
	}

	restStart := simulateWorkPlacement(startDate, length, holidays)

	if restStart.Year() != startDate.Year() {
		return false
	}

	if !calconstraint.CanPlaceRestAt(restStart, holidays) {
		return false
	}

	if calconstraint.NeedsRestThisWeek(state, startDate) {
		_, startWeek := startDate.ISOWeek()
		_, restWeek := restStart.ISOWeek()
		if restWeek != startWeek {
			return false
		}
	}

	return true
}

// simulateWorkPlacement walks forward from startDate, counting `length`
// non-holiday days, and returns the date immediately after the last
// counted work day - i.e. where the following rest block would start.
// Holiday dates are traversed but do not count toward length; they are
// placed by the main builder loop on its next outer iteration.
func simulateWorkPlacement(startDate time.Time, length int, holidays calholiday.HolidayMap) time.Time {
	current := startDate
	placed := 0

	for placed < length {
		if !holidays.Has(current) {
			placed++
		}
		current = current.AddDate(0, 0, 1)
	}

	return current
}

// landsOnFriday reports whether placing workLength work days from
// startDate would land the following rest block's start on a Friday,
// which produces a Saturday-Sunday weekend.
func landsOnFriday(startDate time.Time, workLength int, holidays calholiday.HolidayMap) bool {
	restStart := simulateWorkPlacement(startDate, workLength, holidays)
	return restStart.Weekday() == time.Friday
}
