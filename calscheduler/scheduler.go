// Package calscheduler wires recurring calendar (re)generation into
// go-co-op/gocron, the same scheduler the teacher's acron package
// standardizes on, with the crontab pre-validated by robfig/cron before
// it's handed to gocron.
package calscheduler

import (
	"fmt"
	"sync"
	"time"

	gocron "github.com/go-co-op/gocron/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/robfig/cron/v3"

	"github.com/jpfluger/calendario/calendario"
	"github.com/jpfluger/calendario/callog"
	"github.com/jpfluger/calendario/calschedule"
)

// DefaultCrontab fires once a year, at 02:00 UTC on December 15th.
const DefaultCrontab = "0 2 15 12 *"

var (
	globalScheduler gocron.Scheduler
	once            sync.Once
	mutex           sync.Mutex
)

// SCHEDULER returns the package-level gocron.Scheduler, initialized with
// a UTC location on first use.
func SCHEDULER() gocron.Scheduler {
	once.Do(func() {
		globalScheduler, _ = gocron.NewScheduler(gocron.WithLocation(time.UTC))
	})
	return globalScheduler
}

// Callback receives the calendar produced by a scheduled generation run,
// or the error if generation failed.
type Callback func(cal *calschedule.Calendar, err error)

// ScheduleAnnualGeneration registers a recurring job on SCHEDULER() that
// generates a calendar for targetYear and invokes onResult with the
// outcome. crontab must be a valid five-field standard crontab
// expression; DefaultCrontab is used when crontab is empty.
func ScheduleAnnualGeneration(targetYear int, crontab string, onResult Callback) (gocron.Job, error) {
	if crontab == "" {
		crontab = DefaultCrontab
	}
	if _, err := cron.ParseStandard(crontab); err != nil {
		return nil, fmt.Errorf("invalid crontab expression: %w", err)
	}

	mutex.Lock()
	defer mutex.Unlock()

	job, err := SCHEDULER().NewJob(
		gocron.CronJob(crontab, false),
		gocron.NewTask(runAnnualGeneration, targetYear, onResult),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, fmt.Errorf("error scheduling annual generation: %w", err)
	}

	return job, nil
}

func runAnnualGeneration(targetYear int, onResult Callback) {
	runID, _ := uuid.NewV4()
	logger := callog.LOGGER()

	logger.Info().Str("run_id", runID.String()).Int("year", targetYear).Msg("calscheduler: annual generation starting")

	cal, err := calendario.Generate(calendario.GenerateInput{Year: targetYear})
	if err != nil {
		logger.Error().Str("run_id", runID.String()).Err(err).Msg("calscheduler: annual generation failed")
	} else {
		logger.Info().Str("run_id", runID.String()).Int("year", targetYear).Msg("calscheduler: annual generation finished")
	}

	if onResult != nil {
		onResult(cal, err)
	}
}
