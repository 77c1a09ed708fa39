package caltime

import (
	"testing"
	"time"
)

func TestAllISOWeeks_RegularYear(t *testing.T) {
	weeks := AllISOWeeks(2025)
	if weeks[0] != 1 {
		t.Errorf("first week = %d, want 1", weeks[0])
	}
	if weeks[len(weeks)-1] != 52 {
		t.Errorf("last week = %d, want 52", weeks[len(weeks)-1])
	}
}

func TestAllISOWeeks_LeapYear(t *testing.T) {
	weeks := AllISOWeeks(2024)
	if len(weeks) == 0 {
		t.Fatal("expected at least one week")
	}
	for i := 1; i < len(weeks); i++ {
		if weeks[i] != weeks[i-1]+1 {
			t.Fatalf("weeks not contiguous: %v", weeks)
		}
	}
}

func TestDatesInISOWeek_Week1ContainsJan4(t *testing.T) {
	dates := DatesInISOWeek(2025, 1)
	jan4 := time.Date(2025, time.January, 4, 0, 0, 0, 0, time.UTC)

	found := false
	for _, d := range dates {
		if d.Equal(jan4) {
			found = true
		}
	}
	if !found {
		t.Errorf("week 1 of 2025 should contain Jan 4, got %v", dates)
	}
}

func TestDatesInISOWeek_AllWithinYear(t *testing.T) {
	for _, week := range AllISOWeeks(2025) {
		for _, d := range DatesInISOWeek(2025, week) {
			if d.Year() != 2025 {
				t.Errorf("week %d contains out-of-year date %v", week, d)
			}
		}
	}
}
