package execution

import (
	"sync"
	"time"

	"ctest/internal/domain"
	"ctest/internal/registry"
	"ctest/internal/ui"
)

// Concurrent runs every test on its own goroutine and waits for all of them.
// There is no pooling: a registry of N tests starts N goroutines at once.
type Concurrent struct {
	registry *registry.Registry
	reporter *ui.Reporter
	runner   *Runner
	ordering Ordering
	progress *ui.ProgressBar
}

// NewConcurrent creates a new Concurrent executor
func NewConcurrent(reg *registry.Registry, reporter *ui.Reporter, runner *Runner, ordering Ordering) *Concurrent {
	return &Concurrent{
		registry: reg,
		reporter: reporter,
		runner:   runner,
		ordering: ordering,
	}
}

// SetProgress sets the progress bar for the executor. The bar draws outside the reporter
// lock, so it is meant for OrderRegistration runs where lines are printed after the join.
func (c *Concurrent) SetProgress(progress *ui.ProgressBar) {
	c.progress = progress
}

func (c *Concurrent) Name() string {
	return "concurrent"
}

// Ordering returns the reporting order in effect
func (c *Concurrent) Ordering() Ordering {
	return c.ordering
}

// Run executes all tests and returns the run counters
func (c *Concurrent) Run(label string, verbose bool) domain.Summary {
	_, summary, _ := c.Execute(label, verbose)
	return summary
}

// Execute starts one worker per test, joins them all, and reports according to the
// configured ordering. Partial results are never reported as a summary.
func (c *Concurrent) Execute(label string, verbose bool) ([]domain.TestResult, domain.Summary, time.Duration) {
	cases := c.registry.Cases()
	slots := domain.NewSlots(cases)
	tally := c.reporter.Begin(label, verbose)
	startTime := time.Now()

	var wg sync.WaitGroup
	for i := range cases {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if c.progress != nil {
				c.progress.Start()
			}
			// Each worker owns slots[i]; the coordinator reads it only after wg.Wait.
			c.runner.Run(&slots[i], cases[i])
			if c.ordering == OrderCompletion {
				tally.Record(slots[i].Result())
			}
			if c.progress != nil {
				c.progress.Done(slots[i].State() == domain.StatePassed)
			}
		}(i)
	}
	wg.Wait()

	if c.progress != nil {
		c.progress.Finish()
	}
	if c.ordering == OrderRegistration {
		for i := range slots {
			tally.Record(slots[i].Result())
		}
	}

	return collect(slots), tally.Finish(), time.Since(startTime)
}
