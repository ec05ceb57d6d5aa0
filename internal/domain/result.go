package domain

import "time"

// TestResult represents the result of executing a single test case
type TestResult struct {
	Index    int           // Registration index of the test
	Name     string        // Registered test name
	Outcome  Outcome       // Verdict returned by the test body
	Duration time.Duration // Time taken to execute
}

// Summary holds the counters of one run
type Summary struct {
	Label  string
	Ran    int
	Passed int
	Failed int
}

// OK reports whether every test that ran passed
func (s Summary) OK() bool {
	return s.Failed == 0
}

// RunMeta contains metadata about a stored run
type RunMeta struct {
	RunID           string  `json:"run_id" yaml:"run_id"`
	Label           string  `json:"label" yaml:"label"`
	Executor        string  `json:"executor" yaml:"executor"`
	Ordering        string  `json:"ordering,omitempty" yaml:"ordering,omitempty"`
	TotalTests      int     `json:"total_tests" yaml:"total_tests"`
	PassedTests     int     `json:"passed_tests" yaml:"passed_tests"`
	FailedTests     int     `json:"failed_tests" yaml:"failed_tests"`
	Duration        string  `json:"duration" yaml:"duration"`
	DurationSeconds float64 `json:"duration_seconds" yaml:"duration_seconds"`
	Timestamp       string  `json:"timestamp" yaml:"timestamp"`
}

// RunRecord is the complete persisted structure of a run
type RunRecord struct {
	Meta    RunMeta       `json:"meta" yaml:"meta"`
	Details []TestFailure `json:"details" yaml:"details"`
}
