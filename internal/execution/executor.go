package execution

import (
	"time"

	"ctest/internal/domain"
)

// Executor runs every test of a registry once and reports each outcome
type Executor interface {
	// Run executes all tests and returns the run counters
	Run(label string, verbose bool) domain.Summary
	// Execute is Run plus the per-test results, in registration order, and the wall time
	Execute(label string, verbose bool) ([]domain.TestResult, domain.Summary, time.Duration)
	// Name identifies the strategy in stored run records
	Name() string
}

func collect(slots []domain.Slot) []domain.TestResult {
	results := make([]domain.TestResult, len(slots))
	for i := range slots {
		results[i] = slots[i].Result()
	}
	return results
}
