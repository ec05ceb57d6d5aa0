package domain

// TestFunc is the body of a registered test. It returns the test's Outcome.
type TestFunc func() Outcome

// TestCase is a named test body held by a registry
type TestCase struct {
	Name string
	Body TestFunc
}
