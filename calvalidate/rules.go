// Package calvalidate checks a built Calendar against the seven
// scheduling rules a generated calendar must satisfy, expressed as
// data per the design's "validation rules as data" note rather than as
// a hardcoded call chain.
package calvalidate

import (
	"fmt"
	"time"

	"github.com/jpfluger/calendario/calerr"
	"github.com/jpfluger/calendario/calkind"
	"github.com/jpfluger/calendario/caltime"
	"github.com/jpfluger/calendario/calschedule"
)

// NamedRule pairs a rule's name with its check function, so Validate can
// run the whole set uniformly and callers can identify which rule a
// failure came from.
type NamedRule struct {
	Name string
	Fn   func(*calschedule.Calendar) []string
}

// Rules is the full ordered set of checks a generated Calendar must
// pass, 1:1 with the seven requirements the original schedule generator
// enforces.
var Rules = []NamedRule{
	{"holiday_pairing", validateHolidayPairing},
	{"rest_blocks", validateRestBlocks},
	{"ordering_placement", validateOrderingPlacement},
	{"work_block_lengths", validateWorkBlockLengths},
	{"monthly_weekends", validateMonthlyWeekends},
	{"weekly_rest", validateWeeklyRest},
	{"no_sunday_monday_rest", validateNoSundayMondayRest},
}

// Validate runs every rule in Rules against cal and returns the
// aggregated failures, each prefixed with the name of the rule that
// produced it. An empty result means cal is valid.
func Validate(cal *calschedule.Calendar) calerr.ValidationErrors {
	var errs calerr.ValidationErrors
	for _, rule := range Rules {
		for _, msg := range rule.Fn(cal) {
			errs.Add(rule.Name + ": " + msg)
		}
	}
	return errs
}

// validateHolidayPairing checks that isolated holidays are HOLIDAY and
// that consecutive holiday pairs are WORKING_HOLIDAY followed by
// HOLIDAY.
func validateHolidayPairing(cal *calschedule.Calendar) []string {
	var errs []string

	var holidayDays []calkind.Day
	for _, d := range cal.Days {
		if d.Kind == calkind.HOLIDAY || d.Kind == calkind.WORKING_HOLIDAY {
			holidayDays = append(holidayDays, d)
		}
	}

	i := 0
	for i < len(holidayDays) {
		current := holidayDays[i]

		if i+1 < len(holidayDays) {
			next := holidayDays[i+1]
			if next.Date.Sub(current.Date) == 24*time.Hour {
				if current.Kind != calkind.WORKING_HOLIDAY {
					errs = append(errs, fmt.Sprintf(
						"first holiday in pair at %s should be WORKING_HOLIDAY", dateStr(current.Date)))
				}
				if next.Kind != calkind.HOLIDAY {
					errs = append(errs, fmt.Sprintf(
						"second holiday in pair at %s should be HOLIDAY", dateStr(next.Date)))
				}
				i += 2
				continue
			}
		}

		if current.Kind != calkind.HOLIDAY {
			errs = append(errs, fmt.Sprintf("isolated holiday at %s should be HOLIDAY", dateStr(current.Date)))
		}
		i++
	}

	return errs
}

// validateRestBlocks checks that every REST block is exactly 2 days.
func validateRestBlocks(cal *calschedule.Calendar) []string {
	var errs []string
	for _, block := range cal.GetRestBlocks() {
		if len(block) != 2 {
			errs = append(errs, fmt.Sprintf("rest block at %s is %d days (must be 2)", dateStr(block[0].Date), len(block)))
		}
	}
	return errs
}

// validateOrderingPlacement checks that the first work day after a rest
// block is classified ORDERING.
func validateOrderingPlacement(cal *calschedule.Calendar) []string {
	var errs []string
	days := cal.Days

	for i := 1; i < len(days); i++ {
		previous := days[i-1]
		current := days[i]

		if previous.IsRestDay() && current.IsWorkDay() && current.Kind != calkind.ORDERING {
			errs = append(errs, fmt.Sprintf(
				"expected ORDERING at %s after rest, got %s", dateStr(current.Date), current.Kind))
		}
	}

	return errs
}

// validateWorkBlockLengths checks that every work block is 3-7 days.
func validateWorkBlockLengths(cal *calschedule.Calendar) []string {
	var errs []string
	for _, block := range cal.GetWorkBlocks() {
		length := len(block)
		switch {
		case length < 3:
			errs = append(errs, fmt.Sprintf("work block at %s is %d days (min: 3)", dateStr(block[0].Date), length))
		case length > 7:
			errs = append(errs, fmt.Sprintf("work block at %s is %d days (max: 7)", dateStr(block[0].Date), length))
		}
	}
	return errs
}

// validateMonthlyWeekends checks that each month has exactly one
// Saturday-Sunday REST pair.
func validateMonthlyWeekends(cal *calschedule.Calendar) []string {
	var errs []string

	for month := time.January; month <= time.December; month++ {
		monthDays := cal.GetMonthDays(month)
		freeWeekends := 0

		for i := 0; i < len(monthDays)-1; i++ {
			day1 := monthDays[i]
			day2 := monthDays[i+1]

			if day1.Date.Weekday() == time.Saturday && day2.Date.Weekday() == time.Sunday &&
				day1.Kind == calkind.REST && day2.Kind == calkind.REST {
				freeWeekends++
			}
		}

		if freeWeekends != 1 {
			errs = append(errs, fmt.Sprintf("month %d has %d free weekends (must be 1)", int(month), freeWeekends))
		}
	}

	return errs
}

// validateWeeklyRest checks that each ISO week of the year contains
// exactly one 2-day rest block.
func validateWeeklyRest(cal *calschedule.Calendar) []string {
	var errs []string

	for _, week := range caltime.AllISOWeeks(cal.Year) {
		weekDates := caltime.DatesInISOWeek(cal.Year, week)

		restBlocks := 0
		i := 0
		for i < len(weekDates) {
			day, ok := cal.GetDay(weekDates[i])
			if !ok {
				i++
				continue
			}
			if day.Kind == calkind.REST {
				if i+1 < len(weekDates) {
					next, ok := cal.GetDay(weekDates[i+1])
					if ok && next.Kind == calkind.REST {
						restBlocks++
						i += 2
						continue
					}
				}
			}
			i++
		}

		if restBlocks != 1 {
			errs = append(errs, fmt.Sprintf("week %d has %d rest blocks (must be 1)", week, restBlocks))
		}
	}

	return errs
}

// validateNoSundayMondayRest checks that no REST block begins on a
// Sunday and continues into Monday.
func validateNoSundayMondayRest(cal *calschedule.Calendar) []string {
	var errs []string
	days := cal.Days

	for i := 0; i < len(days)-1; i++ {
		if days[i].Kind == calkind.REST && days[i+1].Kind == calkind.REST &&
			days[i].Date.Weekday() == time.Sunday && days[i+1].Date.Weekday() == time.Monday {
			errs = append(errs, fmt.Sprintf("invalid Sunday-Monday rest block at %s", dateStr(days[i].Date)))
		}
	}

	return errs
}

func dateStr(d time.Time) string {
	return d.Format("2006-01-02")
}
