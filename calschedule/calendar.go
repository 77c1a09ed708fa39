// Package calschedule builds and represents the finished annual
// work/rest calendar.
package calschedule

import (
	"time"

	"github.com/jpfluger/calendario/calerr"
	"github.com/jpfluger/calendario/calkind"
	"github.com/jpfluger/calendario/caltime"
)

// Calendar is a year plus the ordered sequence of Days covering every
// date of that year exactly once.
type Calendar struct {
	Year int
	Days []calkind.Day

	index map[string]int
}

// NewCalendar builds a Calendar from days, which must already be sorted
// in strictly increasing date order and cover every date of year exactly
// once.
func NewCalendar(year int, days []calkind.Day) (*Calendar, *calerr.InternalError) {
	if len(days) == 0 {
		return nil, calerr.NewInternalError("calendar must have at least one day")
	}

	index := make(map[string]int, len(days))
	for i, day := range days {
		if day.Date.Year() != year {
			return nil, calerr.NewInternalError("day %s does not belong to year %d", day.Date.Format("2006-01-02"), year)
		}
		index[calkind.DateKey(day.Date)] = i
	}

	return &Calendar{Year: year, Days: days, index: index}, nil
}

// GetDay returns the Day for d, and whether it was found.
func (c *Calendar) GetDay(d time.Time) (calkind.Day, bool) {
	i, ok := c.index[calkind.DateKey(d)]
	if !ok {
		return calkind.Day{}, false
	}
	return c.Days[i], true
}

// GetMonthDays returns every Day in the given month (1-12), in date
// order.
func (c *Calendar) GetMonthDays(month time.Month) []calkind.Day {
	var days []calkind.Day
	for _, day := range c.Days {
		if day.Date.Month() == month {
			days = append(days, day)
		}
	}
	return days
}

// GetWorkBlocks returns every maximal run of consecutive work days.
func (c *Calendar) GetWorkBlocks() [][]calkind.Day {
	return maximalRuns(c.Days, func(d calkind.Day) bool { return d.IsWorkDay() })
}

// GetRestBlocks returns every maximal run of consecutive REST days.
// HOLIDAY days are not included, matching the GLOSSARY definition of a
// rest block.
func (c *Calendar) GetRestBlocks() [][]calkind.Day {
	return maximalRuns(c.Days, func(d calkind.Day) bool { return d.Kind == calkind.REST })
}

// FreeWeekendDates returns the Saturday of every confirmed Saturday-Sunday
// rest pair in the calendar, as an export feed for callers that want the
// free-weekend cadence described by caltime.RestWeekendRRule cross-checked
// against what was actually scheduled rather than what the rule predicts
// in isolation.
func (c *Calendar) FreeWeekendDates() ([]time.Time, *calerr.InternalError) {
	rr, err := caltime.RestWeekendRRule(c.Year)
	if err != nil {
		return nil, calerr.NewInternalError("could not build weekend rrule for year %d: %v", c.Year, err)
	}

	var dates []time.Time
	for _, first := range rr.All() {
		for saturday := first; saturday.Month() == first.Month(); saturday = saturday.AddDate(0, 0, 7) {
			sunday := saturday.AddDate(0, 0, 1)
			if !caltime.IsWeekendByTime(saturday) || !caltime.IsWeekendByTime(sunday) {
				continue
			}

			sat, satOK := c.GetDay(saturday)
			sun, sunOK := c.GetDay(sunday)
			if satOK && sunOK && sat.Kind == calkind.REST && sun.Kind == calkind.REST {
				dates = append(dates, saturday)
			}
		}
	}

	return dates, nil
}

func maximalRuns(days []calkind.Day, match func(calkind.Day) bool) [][]calkind.Day {
	var blocks [][]calkind.Day
	var current []calkind.Day

	for _, day := range days {
		if match(day) {
			current = append(current, day)
		} else if len(current) > 0 {
			blocks = append(blocks, current)
			current = nil
		}
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}
