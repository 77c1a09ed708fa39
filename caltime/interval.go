package caltime

import (
	"fmt"
	"sort"
	"time"
)

// Interval is an inclusive [Start, End] date range.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval constructs an Interval, rejecting a range that ends before
// it starts.
func NewInterval(start, end time.Time) (Interval, error) {
	start, end = TruncateToDate(start), TruncateToDate(end)
	if end.Before(start) {
		return Interval{}, fmt.Errorf("end %s cannot be before start %s", end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	return Interval{Start: start, End: end}, nil
}

// Length returns the number of days the interval spans, inclusive of
// both endpoints.
func (iv Interval) Length() int {
	return int(iv.End.Sub(iv.Start).Hours()/24) + 1
}

// Contains reports whether d falls within the interval, inclusive.
func (iv Interval) Contains(d time.Time) bool {
	d = TruncateToDate(d)
	return !d.Before(iv.Start) && !d.After(iv.End)
}

// Overlaps reports whether iv and other share at least one date.
func (iv Interval) Overlaps(other Interval) bool {
	return !(iv.End.Before(other.Start) || other.End.Before(iv.Start))
}

// Dates enumerates every date in the interval, inclusive.
func (iv Interval) Dates() []time.Time {
	n := iv.Length()
	dates := make([]time.Time, n)
	for i := 0; i < n; i++ {
		dates[i] = iv.Start.AddDate(0, 0, i)
	}
	return dates
}

// FindGaps returns the Intervals of year not covered by any interval in
// intervals. When intervals is empty, the entire year is one gap.
func FindGaps(intervals []Interval, year int) []Interval {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	if len(intervals) == 0 {
		return []Interval{{Start: yearStart, End: yearEnd}}
	}

	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start.Before(sorted[j].Start) })

	var gaps []Interval

	if sorted[0].Start.After(yearStart) {
		gaps = append(gaps, Interval{Start: yearStart, End: sorted[0].Start.AddDate(0, 0, -1)})
	}

	for i := 0; i < len(sorted)-1; i++ {
		currentEnd := sorted[i].End
		nextStart := sorted[i+1].Start
		if nextStart.After(currentEnd.AddDate(0, 0, 1)) {
			gaps = append(gaps, Interval{Start: currentEnd.AddDate(0, 0, 1), End: nextStart.AddDate(0, 0, -1)})
		}
	}

	if sorted[len(sorted)-1].End.Before(yearEnd) {
		gaps = append(gaps, Interval{Start: sorted[len(sorted)-1].End.AddDate(0, 0, 1), End: yearEnd})
	}

	return gaps
}
