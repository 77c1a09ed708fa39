// Package calconstraint holds the ScheduleState cursor and the pure
// predicates the decision policy and schedule builder consult while a
// calendar is under construction.
package calconstraint

import (
	"time"

	"github.com/jpfluger/calendario/calkind"
)

// ScheduleState is the cursor threaded through the schedule builder. Per
// the design's explicit allowance for a systems-language implementation,
// it is a mutable struct the builder advances in place rather than an
// immutable value rebuilt on every step; the public contract is
// unaffected as long as callers only observe it after each step
// completes.
type ScheduleState struct {
	CurrentDate       time.Time
	DaysSoFar         []calkind.Day
	WeeksWithRest     map[int]struct{}
	MonthsWithWeekend map[time.Month]struct{}
}

// NewScheduleState creates the initial state for a year, positioned at
// January 1.
func NewScheduleState(year int) *ScheduleState {
	return &ScheduleState{
		CurrentDate:       time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		DaysSoFar:         nil,
		WeeksWithRest:     make(map[int]struct{}),
		MonthsWithWeekend: make(map[time.Month]struct{}),
	}
}

// LastDay returns the most recently placed day, and whether any day has
// been placed yet.
func (s *ScheduleState) LastDay() (calkind.Day, bool) {
	if len(s.DaysSoFar) == 0 {
		return calkind.Day{}, false
	}
	return s.DaysSoFar[len(s.DaysSoFar)-1], true
}

// CurrentWorkStreak counts the trailing run of work days at the end of
// DaysSoFar, stopping at the first rest day (or the start of the slice).
func (s *ScheduleState) CurrentWorkStreak() int {
	count := 0
	for i := len(s.DaysSoFar) - 1; i >= 0; i-- {
		if s.DaysSoFar[i].IsWorkDay() {
			count++
		} else {
			break
		}
	}
	return count
}

// AppendDay appends day to DaysSoFar.
func (s *ScheduleState) AppendDay(day calkind.Day) {
	s.DaysSoFar = append(s.DaysSoFar, day)
}

// MarkWeekHasRest records that ISO week weekNum now has a completed rest
// block.
func (s *ScheduleState) MarkWeekHasRest(weekNum int) {
	s.WeeksWithRest[weekNum] = struct{}{}
}

// MarkMonthHasWeekend records that month now has its Saturday-Sunday
// rest pair.
func (s *ScheduleState) MarkMonthHasWeekend(month time.Month) {
	s.MonthsWithWeekend[month] = struct{}{}
}
