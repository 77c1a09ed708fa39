package calholiday

import (
	"testing"
	"time"

	"github.com/jpfluger/calendario/calkind"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestClassify_Empty(t *testing.T) {
	hm, err := Classify(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hm) != 0 {
		t.Errorf("expected empty map, got %d entries", len(hm))
	}
}

func TestClassify_IsolatedHoliday(t *testing.T) {
	hm, err := Classify([]time.Time{date(2025, time.January, 1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hm.IsKind(date(2025, time.January, 1), calkind.HOLIDAY) {
		t.Errorf("expected Jan 1 to be HOLIDAY, got %v", hm)
	}
}

func TestClassify_TwoDayPair(t *testing.T) {
	// 2025-05-01 is a Thursday; safe non-Sunday start.
	hm, err := Classify([]time.Time{date(2025, time.May, 1), date(2025, time.May, 2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hm.IsKind(date(2025, time.May, 1), calkind.WORKING_HOLIDAY) {
		t.Errorf("expected May 1 to be WORKING_HOLIDAY")
	}
	if !hm.IsKind(date(2025, time.May, 2), calkind.HOLIDAY) {
		t.Errorf("expected May 2 to be HOLIDAY")
	}
}

func TestClassify_SundayMondayPairRejected(t *testing.T) {
	// 2025-03-02 is a Sunday, 2025-03-03 is a Monday.
	_, err := Classify([]time.Time{date(2025, time.March, 2), date(2025, time.March, 3)})
	if err == nil {
		t.Fatal("expected Sunday-Monday pair to be rejected")
	}
}

func TestClassify_BlockTooLarge(t *testing.T) {
	_, err := Classify([]time.Time{
		date(2025, time.January, 1),
		date(2025, time.January, 2),
		date(2025, time.January, 3),
	})
	if err == nil {
		t.Fatal("expected block-too-large error")
	}
}

func TestClassify_DeduplicatesInput(t *testing.T) {
	hm, err := Classify([]time.Time{
		date(2025, time.January, 1),
		date(2025, time.January, 1),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hm) != 1 {
		t.Errorf("expected a single entry, got %d", len(hm))
	}
}

func TestClassify_MonthBoundaryPair(t *testing.T) {
	// 2025-04-30 (Wednesday) -> 2025-05-01 (Thursday)
	hm, err := Classify([]time.Time{date(2025, time.April, 30), date(2025, time.May, 1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !hm.IsKind(date(2025, time.April, 30), calkind.WORKING_HOLIDAY) {
		t.Errorf("expected April 30 to be WORKING_HOLIDAY")
	}
	if !hm.IsKind(date(2025, time.May, 1), calkind.HOLIDAY) {
		t.Errorf("expected May 1 to be HOLIDAY")
	}
}
