// Package calendario is the top-level entry point: it validates a
// generation request, classifies holidays, builds a schedule, validates
// the result, and returns the finished Calendar.
package calendario

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid/v5"

	"github.com/jpfluger/calendario/calerr"
	"github.com/jpfluger/calendario/calholiday"
	"github.com/jpfluger/calendario/calkind"
	"github.com/jpfluger/calendario/callog"
	"github.com/jpfluger/calendario/calschedule"
	"github.com/jpfluger/calendario/calvalidate"
)

// GenerateInput is the caller-supplied request for one calendar
// generation run.
type GenerateInput struct {
	// Year is the target year to generate. Must be >= 1.
	Year int `validate:"min=1"`

	// Holidays is an optional list of dates within Year. A repeated date
	// is rejected as an InputError before classification.
	Holidays []time.Time

	// Seed, when non-nil, makes the run reproducible. When nil, a seed
	// derived from the current time is used.
	Seed *int64
}

var validate = validator.New()

// Generate validates input, builds a schedule for input.Year, and
// verifies it against every rule in calvalidate before returning it.
func Generate(input GenerateInput) (*calschedule.Calendar, error) {
	runID, _ := uuid.NewV4()
	started := time.Now()
	logger := callog.LOGGER()

	if err := validate.Struct(input); err != nil {
		return nil, calerr.NewInputError("invalid generate input: %v", err)
	}

	seen := make(map[string]bool, len(input.Holidays))
	for _, h := range input.Holidays {
		if h.Year() != input.Year {
			return nil, calerr.NewInputError("holiday %s is not in target year %d", h.Format("2006-01-02"), input.Year)
		}
		key := calkind.DateKey(h)
		if seen[key] {
			return nil, calerr.NewInputError("duplicate holidays found: %s", h.Format("2006-01-02"))
		}
		seen[key] = true
	}

	logger.Info().
		Str("run_id", runID.String()).
		Int("year", input.Year).
		Int("holidays", len(input.Holidays)).
		Msg("generate: starting")

	holidayMap, hErr := calholiday.Classify(input.Holidays)
	if hErr != nil {
		logger.Error().Str("run_id", runID.String()).Err(hErr).Msg("generate: holiday classification failed")
		return nil, hErr
	}

	rng := newRand(input.Seed)

	days, bErr := calschedule.Build(input.Year, holidayMap, rng)
	if bErr != nil {
		logger.Error().Str("run_id", runID.String()).Err(bErr).Msg("generate: schedule build failed")
		return nil, bErr
	}

	cal, cErr := calschedule.NewCalendar(input.Year, days)
	if cErr != nil {
		logger.Error().Str("run_id", runID.String()).Err(cErr).Msg("generate: calendar assembly failed")
		return nil, cErr
	}

	if errs := calvalidate.Validate(cal); errs.HasErrors() {
		logger.Error().Str("run_id", runID.String()).Err(errs).Msg("generate: validation failed")
		return nil, fmt.Errorf("generated calendar failed validation: %w", errs)
	}

	freeWeekends, fwErr := cal.FreeWeekendDates()
	if fwErr != nil {
		logger.Error().Str("run_id", runID.String()).Err(fwErr).Msg("generate: weekend feed computation failed")
		return nil, fwErr
	}

	elapsed := time.Since(started)
	logger.Info().
		Str("run_id", runID.String()).
		Int("year", input.Year).
		Int("free_weekends", len(freeWeekends)).
		Str("duration", humanize.RelTime(started, time.Now(), "", "")).
		Msg("generate: finished in " + elapsed.String())

	return cal, nil
}

// newRand returns a seeded RNG when seed is non-nil, or one seeded from
// the current time otherwise.
func newRand(seed *int64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewSource(*seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
