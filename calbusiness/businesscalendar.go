// Package calbusiness adapts an already-generated calendar into
// rickar/cal/v2's BusinessCalendar, so callers that already standardize
// on that interface can ask business-day questions about a calendar this
// module produced without re-deriving holiday lists themselves.
package calbusiness

import (
	"time"

	"github.com/rickar/cal/v2"

	"github.com/jpfluger/calendario/calkind"
	"github.com/jpfluger/calendario/calschedule"
)

// NewBusinessCalendar builds a cal.BusinessCalendar seeded with every
// HOLIDAY and WORKING_HOLIDAY day in c. WORKING_HOLIDAY days are
// registered as observance-only (not public) holidays, since they are
// working days in this schedule's own terms.
func NewBusinessCalendar(c *calschedule.Calendar) *cal.BusinessCalendar {
	bc := cal.NewBusinessCalendar()

	for _, day := range c.Days {
		switch day.Kind {
		case calkind.HOLIDAY:
			bc.AddHoliday(newHoliday(day.Date, cal.ObservancePublic))
		case calkind.WORKING_HOLIDAY:
			bc.AddHoliday(newHoliday(day.Date, cal.ObservanceUnofficial))
		}
	}

	return bc
}

func newHoliday(d time.Time, t cal.HolidayType) *cal.Holiday {
	return &cal.Holiday{
		Name:  d.Format("2006-01-02"),
		Type:  t,
		Month: d.Month(),
		Day:   d.Day(),
		Func:  cal.CalcDayOfMonth,
	}
}
