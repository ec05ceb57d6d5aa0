package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"

	"ctest/internal/domain"
)

// Reporter renders per-test lines and run summaries to a single output stream.
// All writes go through one mutex, so workers may report directly from their own goroutines.
type Reporter struct {
	mu      sync.Mutex
	out     io.Writer
	pass    *color.Color
	failure *color.Color
}

// NewReporter creates a Reporter writing to out. When colored is false the PASS and FAILURE
// words are written without escape codes; otherwise color.NoColor decides, so output that is
// not a terminal stays plain.
func NewReporter(out io.Writer, colored bool) *Reporter {
	pass := color.New(color.FgGreen, color.Bold)
	failure := color.New(color.FgRed, color.Bold)
	if !colored {
		pass.DisableColor()
		failure.DisableColor()
	}
	return &Reporter{out: out, pass: pass, failure: failure}
}

// Begin starts a run. Counters live in the returned Tally and are never shared between runs.
func (r *Reporter) Begin(label string, verbose bool) *Tally {
	return &Tally{reporter: r, label: label, verbose: verbose}
}

// Tally accumulates the counters of one run
type Tally struct {
	reporter *Reporter
	label    string
	verbose  bool
	ran      int
	passed   int
	failed   int
}

// Record renders one result and updates the counters. Safe for concurrent use.
func (t *Tally) Record(result domain.TestResult) {
	r := t.reporter
	r.mu.Lock()
	defer r.mu.Unlock()

	t.ran++
	f, failed := result.Outcome.Failure()
	if !failed {
		t.passed++
		if t.verbose {
			fmt.Fprintf(r.out, "%s: %s\n", r.pass.Sprint("PASS"), result.Name)
		}
		return
	}
	t.failed++
	fmt.Fprintf(r.out, "%s: %s: %s: %s\n", r.failure.Sprint("FAILURE"), result.Name, f.Location(), f.Message)
}

// Finish writes the summary line and returns the run counters
func (t *Tally) Finish() domain.Summary {
	r := t.reporter
	r.mu.Lock()
	defer r.mu.Unlock()

	fmt.Fprintf(r.out, "%s: %d tests: %d %s, %d %s\n",
		t.label, t.ran, t.passed, r.pass.Sprint("PASS"), t.failed, r.failure.Sprint("FAIL"))
	return domain.Summary{Label: t.label, Ran: t.ran, Passed: t.passed, Failed: t.failed}
}
