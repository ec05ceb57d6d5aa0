package execution

import (
	"time"

	"ctest/internal/domain"
	"ctest/internal/registry"
	"ctest/internal/ui"
)

// Sequential runs tests one at a time in registration order, reporting each as it finishes
type Sequential struct {
	registry *registry.Registry
	reporter *ui.Reporter
	runner   *Runner
}

// NewSequential creates a new Sequential executor
func NewSequential(reg *registry.Registry, reporter *ui.Reporter, runner *Runner) *Sequential {
	return &Sequential{
		registry: reg,
		reporter: reporter,
		runner:   runner,
	}
}

func (s *Sequential) Name() string {
	return "sequential"
}

// Run executes all tests and returns the run counters
func (s *Sequential) Run(label string, verbose bool) domain.Summary {
	_, summary, _ := s.Execute(label, verbose)
	return summary
}

// Execute runs every test in order
func (s *Sequential) Execute(label string, verbose bool) ([]domain.TestResult, domain.Summary, time.Duration) {
	cases := s.registry.Cases()
	slots := domain.NewSlots(cases)
	tally := s.reporter.Begin(label, verbose)
	startTime := time.Now()

	for i := range cases {
		s.runner.Run(&slots[i], cases[i])
		tally.Record(slots[i].Result())
	}

	return collect(slots), tally.Finish(), time.Since(startTime)
}
