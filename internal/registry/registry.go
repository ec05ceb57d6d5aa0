package registry

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"ctest/internal/domain"
)

// DefaultCapacity is the number of tests a registry holds when no capacity is given
const DefaultCapacity = 1024

// ErrCapacityExceeded is passed to the fatal handler when a registry is full
var ErrCapacityExceeded = errors.New("registry capacity exceeded")

// ErrNilBody is passed to the fatal handler when a test is registered without a body
var ErrNilBody = errors.New("test body is nil")

// FatalFunc handles infrastructure errors. The default prints the error and exits the process.
type FatalFunc func(err error)

// Option configures a Registry
type Option func(*Registry)

// WithFatal replaces the handler that aborts the process on configuration errors
func WithFatal(fn FatalFunc) Option {
	return func(r *Registry) {
		r.fatal = fn
	}
}

// Registry is an ordered, capacity-bounded collection of test cases.
// Registration order is execution and report order.
//
// A Registry is not safe for concurrent registration; register everything before running.
type Registry struct {
	capacity int
	cases    []domain.TestCase
	fatal    FatalFunc
}

// New creates an empty Registry. A capacity <= 0 means DefaultCapacity.
func New(capacity int, opts ...Option) *Registry {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	r := &Registry{
		capacity: capacity,
		cases:    make([]domain.TestCase, 0, min(capacity, 64)),
		fatal:    exit,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register appends a test. Exceeding the capacity is a configuration error and goes to the
// fatal handler; the test is not added. Names are not deduplicated.
func (r *Registry) Register(name string, body domain.TestFunc) {
	if body == nil {
		r.fatal(fmt.Errorf("%w: %q", ErrNilBody, name))
		return
	}
	if len(r.cases) >= r.capacity {
		r.fatal(fmt.Errorf("%w: cannot register %q, capacity is %d", ErrCapacityExceeded, name, r.capacity))
		return
	}
	r.cases = append(r.cases, domain.TestCase{Name: name, Body: body})
}

// Len returns the number of registered tests
func (r *Registry) Len() int {
	return len(r.cases)
}

// Cap returns the registry capacity
func (r *Registry) Cap() int {
	return r.capacity
}

// Cases returns the registered tests in registration order
func (r *Registry) Cases() []domain.TestCase {
	out := make([]domain.TestCase, len(r.cases))
	copy(out, r.cases)
	return out
}

// Names returns the registered test names in registration order
func (r *Registry) Names() []string {
	names := make([]string, len(r.cases))
	for i, tc := range r.cases {
		names[i] = tc.Name
	}
	return names
}

// Filter returns a new registry with the tests whose names match pattern, in the same order.
// An empty pattern keeps every test.
func (r *Registry) Filter(pattern string) *Registry {
	filtered := &Registry{capacity: r.capacity, fatal: r.fatal}
	for _, tc := range r.cases {
		if MatchName(pattern, tc.Name) {
			filtered.cases = append(filtered.cases, tc)
		}
	}
	return filtered
}

func exit(err error) {
	color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "fatal: %v\n", err)
	os.Exit(2)
}
