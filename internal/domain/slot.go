package domain

import (
	"fmt"
	"time"
)

// State is the lifecycle position of one test within a run
type State int

const (
	StatePending State = iota
	StateRunning
	StatePassed
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateRunning:
		return "running"
	case StatePassed:
		return "passed"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Terminal reports whether no further transition is allowed
func (s State) Terminal() bool {
	return s == StatePassed || s == StateFailed
}

// Slot stores the result of one test for one run. Slot i belongs to the i-th registered test.
//
// A slot moves Pending -> Running -> Passed|Failed exactly once. Any other transition is a
// programming error and panics.
type Slot struct {
	Index    int
	Name     string
	state    State
	outcome  Outcome
	duration time.Duration
}

// NewSlots allocates one pending slot per test case, in the same order.
func NewSlots(cases []TestCase) []Slot {
	slots := make([]Slot, len(cases))
	for i, tc := range cases {
		slots[i] = Slot{Index: i, Name: tc.Name}
	}
	return slots
}

// Start moves the slot from Pending to Running
func (s *Slot) Start() {
	if s.state != StatePending {
		panic(fmt.Sprintf("slot %d (%s): cannot start from state %s", s.Index, s.Name, s.state))
	}
	s.state = StateRunning
}

// Complete records the outcome and moves the slot to its terminal state
func (s *Slot) Complete(outcome Outcome, duration time.Duration) {
	if s.state != StateRunning {
		panic(fmt.Sprintf("slot %d (%s): cannot complete from state %s", s.Index, s.Name, s.state))
	}
	s.outcome = outcome
	s.duration = duration
	if outcome.Passed() {
		s.state = StatePassed
	} else {
		s.state = StateFailed
	}
}

func (s *Slot) State() State {
	return s.state
}

// Result converts a completed slot into a TestResult
func (s *Slot) Result() TestResult {
	return TestResult{
		Index:    s.Index,
		Name:     s.Name,
		Outcome:  s.outcome,
		Duration: s.duration,
	}
}
