package calschedule

import (
	"math/rand"
	"time"

	"github.com/jpfluger/calendario/caldecision"
	"github.com/jpfluger/calendario/calconstraint"
	"github.com/jpfluger/calendario/calerr"
	"github.com/jpfluger/calendario/calholiday"
	"github.com/jpfluger/calendario/calkind"
)

// Build walks year day-by-day from January 1, alternating work and rest
// blocks around holidays, per spec §4.4. It is the single driver of
// calendar generation: every other package in this module exists to
// answer a question this loop asks.
func Build(year int, holidays calholiday.HolidayMap, rng *rand.Rand) ([]calkind.Day, *calerr.InternalError) {
	state := calconstraint.NewScheduleState(year)

	for state.CurrentDate.Year() == year {
		if holidays.Has(state.CurrentDate) {
			placeHoliday(state, holidays)
			continue
		}

		if err := placeWorkBlock(state, holidays, rng); err != nil {
			return nil, err
		}

		if state.CurrentDate.Year() == year {
			if err := placeRestBlock(state, holidays); err != nil {
				return nil, err
			}
		}
	}

	return state.DaysSoFar, nil
}

// placeHoliday appends the single holiday day at the current date and
// advances the cursor by one day. Holidays bypass the decision policy:
// they neither count against the 7-day work cap nor receive a rest.
func placeHoliday(state *calconstraint.ScheduleState, holidays calholiday.HolidayMap) {
	kind, _ := holidays.Lookup(state.CurrentDate)
	state.AppendDay(calkind.Day{Date: state.CurrentDate, Kind: kind})
	state.CurrentDate = state.CurrentDate.AddDate(0, 0, 1)
}

// placeWorkBlock asks the decision policy for a work-block length, then
// emits that many non-holiday work days. A holiday date met along the
// way is placed with its own kind and does not count toward the length.
// A work day that immediately follows a rest day is classified ORDERING.
func placeWorkBlock(state *calconstraint.ScheduleState, holidays calholiday.HolidayMap, rng *rand.Rand) *calerr.InternalError {
	workLength, err := caldecision.DecideWorkBlockLength(state, state.CurrentDate, holidays, rng)
	if err != nil {
		return err
	}

	targetYear := state.CurrentDate.Year()
	placed := 0

	for placed < workLength && state.CurrentDate.Year() == targetYear {
		if holidays.Has(state.CurrentDate) {
			placeHoliday(state, holidays)
			continue
		}

		kind := calkind.WORK
		if lastDay, ok := state.LastDay(); ok && lastDay.IsRestDay() {
			kind = calkind.ORDERING
		}

		state.AppendDay(calkind.Day{Date: state.CurrentDate, Kind: kind})
		state.CurrentDate = state.CurrentDate.AddDate(0, 0, 1)
		placed++
	}

	return nil
}

// placeRestBlock emits a 2-day REST block at the current date -
// truncated to a single day if the year ends before the second date -
// and updates the weekly/monthly coverage bookkeeping.
func placeRestBlock(state *calconstraint.ScheduleState, holidays calholiday.HolidayMap) *calerr.InternalError {
	if !calconstraint.CanPlaceRestAt(state.CurrentDate, holidays) {
		return calerr.NewInternalError(
			"cannot place rest at %s - algorithm error", state.CurrentDate.Format("2006-01-02"))
	}

	restStart := state.CurrentDate
	year := restStart.Year()

	state.AppendDay(calkind.Day{Date: restStart, Kind: calkind.REST})

	second := restStart.AddDate(0, 0, 1)
	if second.Year() == year {
		state.AppendDay(calkind.Day{Date: second, Kind: calkind.REST})
	}

	_, week := restStart.ISOWeek()
	state.MarkWeekHasRest(week)

	if restStart.Weekday() == time.Saturday {
		state.MarkMonthHasWeekend(restStart.Month())
	}

	state.CurrentDate = second.AddDate(0, 0, 1)
	return nil
}
