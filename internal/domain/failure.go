package domain

// TestFailure is the stored form of a failed test
type TestFailure struct {
	TestName string  `json:"test_name" yaml:"test_name"`
	Index    int     `json:"index" yaml:"index"`
	Kind     string  `json:"kind" yaml:"kind"`
	File     string  `json:"file" yaml:"file"`
	Line     int     `json:"line" yaml:"line"`
	Message  string  `json:"message" yaml:"message"`
	Seconds  float64 `json:"duration_seconds" yaml:"duration_seconds"`
	Resolved bool    `json:"resolved,omitempty" yaml:"resolved,omitempty"` // Track if the failure is marked as resolved
}

// NewTestFailure converts a failed result into its stored form. ok is false for passing results.
func NewTestFailure(r TestResult) (TestFailure, bool) {
	f, failed := r.Outcome.Failure()
	if !failed {
		return TestFailure{}, false
	}
	return TestFailure{
		TestName: r.Name,
		Index:    r.Index,
		Kind:     f.Kind.String(),
		File:     f.File,
		Line:     f.Line,
		Message:  f.Message,
		Seconds:  r.Duration.Seconds(),
	}, true
}
