// Package calbatch generates several independent calendars concurrently.
// Each run owns its own RNG seed and writes only to its own result-slice
// index, so no locks or shared mutable state are needed across
// goroutines.
package calbatch

import (
	"sync"
	"time"

	"github.com/jpfluger/calendario/calendario"
	"github.com/jpfluger/calendario/calschedule"
)

// Result is one run's outcome: either a Calendar or an error, never
// both.
type Result struct {
	Calendar *calschedule.Calendar
	Err      error
}

// GenerateIndependent runs n independent generations for year, each
// seeded with baseSeed+i, and returns one Result per index in input
// order. holidays is shared read-only input to every run.
func GenerateIndependent(n int, year int, holidays []time.Time, baseSeed int64) []Result {
	results := make([]Result, n)

	var wg sync.WaitGroup
	wg.Add(n)

	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()

			seed := baseSeed + int64(i)
			cal, err := calendario.Generate(calendario.GenerateInput{
				Year:     year,
				Holidays: holidays,
				Seed:     &seed,
			})
			results[i] = Result{Calendar: cal, Err: err}
		}(i)
	}

	wg.Wait()
	return results
}
