package execution

import (
	"time"

	"ctest/internal/domain"
)

// Runner executes a single test body into its slot
type Runner struct {
	now func() time.Time
}

// NewRunner creates a new Runner
func NewRunner() *Runner {
	return &Runner{now: time.Now}
}

// Run moves slot through Running into its terminal state. The body runs to completion;
// there is no timeout and no retry.
func (r *Runner) Run(slot *domain.Slot, tc domain.TestCase) {
	slot.Start()
	start := r.now()
	outcome := tc.Body()
	slot.Complete(outcome, r.now().Sub(start))
}
