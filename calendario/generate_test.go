package calendario

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpfluger/calendario/calkind"
)

func seedOf(n int64) *int64 { return &n }

func TestGenerate_RejectsInvalidYear(t *testing.T) {
	_, err := Generate(GenerateInput{Year: 0})
	assert.Error(t, err, "expected error for year 0")
}

func TestGenerate_RejectsHolidayOutsideYear(t *testing.T) {
	input := GenerateInput{
		Year:     2025,
		Holidays: []time.Time{time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)},
		Seed:     seedOf(1),
	}
	_, err := Generate(input)
	assert.Error(t, err, "expected error for out-of-year holiday")
}

func TestGenerate_RejectsDuplicateHolidays(t *testing.T) {
	dup := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	input := GenerateInput{
		Year:     2025,
		Holidays: []time.Time{dup, dup},
		Seed:     seedOf(1),
	}
	_, err := Generate(input)
	assert.Error(t, err, "expected error for duplicate holidays")
}

func TestGenerate_ProducesFullYearDeterministically(t *testing.T) {
	input := GenerateInput{Year: 2025, Seed: seedOf(42)}

	cal1, err1 := Generate(input)
	require.NoError(t, err1)
	cal2, err2 := Generate(input)
	require.NoError(t, err2)

	require.Len(t, cal1.Days, 365)
	for i := range cal1.Days {
		assert.Equal(t, cal1.Days[i].Kind, cal2.Days[i].Kind, "non-deterministic output at index %d", i)
	}
}

func TestGenerate_HonorsSuppliedHolidays(t *testing.T) {
	holiday := time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC)
	input := GenerateInput{
		Year:     2025,
		Holidays: []time.Time{holiday},
		Seed:     seedOf(7),
	}

	cal, err := Generate(input)
	require.NoError(t, err)

	day, ok := cal.GetDay(holiday)
	require.True(t, ok, "holiday date missing from generated calendar")
	assert.Equal(t, calkind.HOLIDAY, day.Kind)
}
