package calkind

import "testing"

func TestDayKind_IsEmpty(t *testing.T) {
	tests := []struct {
		name string
		kind DayKind
		want bool
	}{
		{"empty string", "", true},
		{"non-empty", WORK, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDayKind_IsValid(t *testing.T) {
	valid := []DayKind{WORK, ORDERING, REST, HOLIDAY, WORKING_HOLIDAY}
	for _, k := range valid {
		t.Run(string(k), func(t *testing.T) {
			if !k.IsValid() {
				t.Errorf("DayKind %q should be valid", k)
			}
		})
	}

	t.Run("invalid kind", func(t *testing.T) {
		invalid := DayKind("weekend")
		if invalid.IsValid() {
			t.Errorf("DayKind %q should be invalid", invalid)
		}
	})
}

func TestDayKind_IsWorkDay(t *testing.T) {
	tests := []struct {
		kind DayKind
		want bool
	}{
		{WORK, true},
		{ORDERING, true},
		{WORKING_HOLIDAY, true},
		{REST, false},
		{HOLIDAY, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := tt.kind.IsWorkDay(); got != tt.want {
				t.Errorf("IsWorkDay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDayKind_IsRestDay(t *testing.T) {
	tests := []struct {
		kind DayKind
		want bool
	}{
		{REST, true},
		{HOLIDAY, true},
		{WORK, false},
		{ORDERING, false},
		{WORKING_HOLIDAY, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := tt.kind.IsRestDay(); got != tt.want {
				t.Errorf("IsRestDay() = %v, want %v", got, tt.want)
			}
		})
	}
}
