package caltime

import "time"

// AllISOWeeks enumerates every ISO week number that belongs to year,
// handling the boundary cases where January 1 belongs to the prior ISO
// year or December 31 belongs to the next one (spec §6.4).
func AllISOWeeks(year int) []int {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	dec31 := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	_, startWeek := jan1.ISOWeek()
	_, endWeek := dec31.ISOWeek()

	if startWeek > 50 {
		startWeek = 1
	}

	if endWeek == 1 {
		dec28 := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC)
		_, endWeek = dec28.ISOWeek()
	}

	weeks := make([]int, 0, endWeek-startWeek+1)
	for w := startWeek; w <= endWeek; w++ {
		weeks = append(weeks, w)
	}
	return weeks
}

// DatesInISOWeek returns every date of ISO week `week` of `year` that
// actually falls within `year` (a week at the year boundary may overlap
// the adjacent year).
func DatesInISOWeek(year, week int) []time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	// Go's time.Monday == 1 ... time.Sunday == 0; shift Sunday to 7 so the
	// Monday-anchored offset below matches ISO 8601 week start.
	weekday := int(jan4.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	weekStart := jan4.AddDate(0, 0, -(weekday-1)+(week-1)*7)

	dates := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		d := weekStart.AddDate(0, 0, i)
		if d.Year() == year {
			dates = append(dates, d)
		}
	}
	return dates
}
