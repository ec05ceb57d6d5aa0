package domain

import "fmt"

// Kind identifies the assertion category that produced a Failure
type Kind int

const (
	KindBoolean Kind = iota + 1
	KindEquality
	KindInequality
	KindLessThan
	KindGreaterThan
	KindLessOrEqual
	KindGreaterOrEqual
	KindRange
	KindNull
	KindNotNull
)

var kindNames = map[Kind]string{
	KindBoolean:        "boolean",
	KindEquality:       "equality",
	KindInequality:     "inequality",
	KindLessThan:       "less-than",
	KindGreaterThan:    "greater-than",
	KindLessOrEqual:    "less-or-equal",
	KindGreaterOrEqual: "greater-or-equal",
	KindRange:          "range",
	KindNull:           "null",
	KindNotNull:        "not-null",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Failure carries the diagnostic payload of a failed check.
// Message is fully rendered; File and Line point at the failing call site.
type Failure struct {
	Kind    Kind
	Message string
	File    string
	Line    int
}

// Location returns "file:line"
func (f Failure) Location() string {
	return fmt.Sprintf("%s:%d", f.File, f.Line)
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s: %s", f.Location(), f.Message)
}

// Outcome is the verdict of a single test body execution.
//
// An Outcome is either Success, which has no payload, or a Failure. The zero value is Success.
type Outcome struct {
	failure *Failure
}

// Success returns the passing Outcome
func Success() Outcome {
	return Outcome{}
}

// Fail wraps f into a failing Outcome
func Fail(f Failure) Outcome {
	return Outcome{failure: &f}
}

// Passed reports whether the outcome is Success
func (o Outcome) Passed() bool {
	return o.failure == nil
}

// Failure returns the failure payload and true, or a zero Failure and false for Success.
func (o Outcome) Failure() (Failure, bool) {
	if o.failure == nil {
		return Failure{}, false
	}
	return *o.failure, true
}

func (o Outcome) String() string {
	if o.failure == nil {
		return "success"
	}
	return "failure: " + o.failure.Error()
}
