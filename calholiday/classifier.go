// Package calholiday classifies a list of raw holiday dates into the
// HolidayMap the rest of the generator consumes.
package calholiday

import (
	"sort"
	"time"

	"github.com/jpfluger/calendario/calerr"
	"github.com/jpfluger/calendario/calkind"
)

// HolidayMap maps a date (keyed by YYYY-MM-DD) to HOLIDAY or
// WORKING_HOLIDAY. Every input holiday date appears exactly once.
type HolidayMap map[string]calkind.DayKind

// Lookup returns the DayKind for t and whether t is a holiday at all.
func (hm HolidayMap) Lookup(t time.Time) (calkind.DayKind, bool) {
	kind, ok := hm[calkind.DateKey(t)]
	return kind, ok
}

// Has reports whether t is present in the map.
func (hm HolidayMap) Has(t time.Time) bool {
	_, ok := hm[calkind.DateKey(t)]
	return ok
}

// IsKind reports whether t is present in the map with exactly kind.
func (hm HolidayMap) IsKind(t time.Time, kind calkind.DayKind) bool {
	k, ok := hm[calkind.DateKey(t)]
	return ok && k == kind
}

// Classify groups dates into maximal runs of consecutive days and assigns
// each run the DayKind spec §4.1 requires: a solitary date becomes
// HOLIDAY; a two-date run becomes WORKING_HOLIDAY followed by HOLIDAY,
// unless the run starts on a Sunday (which would force an illegal
// Sunday-Monday rest-like sequence); a run of three or more dates is
// rejected. Duplicate dates are tolerated and deduplicated.
func Classify(dates []time.Time) (HolidayMap, *calerr.InputError) {
	result := make(HolidayMap)
	if len(dates) == 0 {
		return result, nil
	}

	sorted := dedupeAndSort(dates)
	blocks := groupConsecutive(sorted)

	for _, block := range blocks {
		switch len(block) {
		case 1:
			result[calkind.DateKey(block[0])] = calkind.HOLIDAY
		case 2:
			if block[0].Weekday() == time.Sunday && block[1].Weekday() == time.Monday {
				return nil, calerr.NewInputError(
					"Sunday-Monday holiday pair not allowed: %s and %s",
					block[0].Format("2006-01-02"), block[1].Format("2006-01-02"))
			}
			result[calkind.DateKey(block[0])] = calkind.WORKING_HOLIDAY
			result[calkind.DateKey(block[1])] = calkind.HOLIDAY
		default:
			return nil, calerr.NewInputError(
				"holiday block too large (%d days): %s to %s",
				len(block), block[0].Format("2006-01-02"), block[len(block)-1].Format("2006-01-02"))
		}
	}

	return result, nil
}

func dedupeAndSort(dates []time.Time) []time.Time {
	seen := make(map[string]time.Time, len(dates))
	for _, d := range dates {
		key := calkind.DateKey(d)
		if _, ok := seen[key]; !ok {
			seen[key] = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		}
	}

	sorted := make([]time.Time, 0, len(seen))
	for _, d := range seen {
		sorted = append(sorted, d)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })
	return sorted
}

func groupConsecutive(sorted []time.Time) [][]time.Time {
	if len(sorted) == 0 {
		return nil
	}

	var blocks [][]time.Time
	current := []time.Time{sorted[0]}

	for _, d := range sorted[1:] {
		if d.Sub(current[len(current)-1]) == 24*time.Hour {
			current = append(current, d)
		} else {
			blocks = append(blocks, current)
			current = []time.Time{d}
		}
	}
	blocks = append(blocks, current)
	return blocks
}
