package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"ctest/internal/domain"
)

// Formatter formats and displays stored runs and test listings
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

var (
	cyan   = color.New(color.FgCyan)
	white  = color.New(color.FgWhite)
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
)

// PrintStats displays the statistics of a stored run
func (f *Formatter) PrintStats(record *domain.RunRecord) {
	meta := record.Meta

	// Print header
	fmt.Fprint(f.out, "\n")
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║                    Test Execution Statistics                  ║")
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(f.out)

	rows := []struct {
		label string
		value string
		c     *color.Color
	}{
		{"Label", meta.Label, white},
		{"Executor", executorName(meta), white},
		{"Total Tests", fmt.Sprint(meta.TotalTests), white},
		{"Passed Tests", fmt.Sprint(meta.PassedTests), green},
		{"Failed Tests", fmt.Sprint(meta.FailedTests), red},
		{"Duration", fmt.Sprintf("%.2fs", meta.DurationSeconds), white},
		{"Run ID", meta.RunID, white},
		{"Timestamp", meta.Timestamp, white},
	}

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬──────────────────────────────────────┐")
	for i, row := range rows {
		fmt.Fprintf(f.out, "│ %-31s │ ", row.label)
		row.c.Fprintf(f.out, "%-36s", row.value)
		fmt.Fprintln(f.out, " │")
		if i < len(rows)-1 {
			fmt.Fprintln(f.out, "├─────────────────────────────────┼──────────────────────────────────────┤")
		}
	}
	fmt.Fprintln(f.out, "└─────────────────────────────────┴──────────────────────────────────────┘")

	// Print summary line
	fmt.Fprintln(f.out)
	if meta.FailedTests == 0 {
		green.Fprintln(f.out, "✓ All tests passed!")
		return
	}
	red.Fprintf(f.out, "✗ %d test(s) failed\n", meta.FailedTests)
	for i, failure := range record.Details {
		connector := "├──"
		if i == len(record.Details)-1 {
			connector = "└──"
		}
		red.Fprintf(f.out, "%s %s", connector, failure.TestName)
		fmt.Fprintf(f.out, " %s:%d\n", failure.File, failure.Line)
	}
}

func executorName(meta domain.RunMeta) string {
	if meta.Ordering == "" {
		return meta.Executor
	}
	return fmt.Sprintf("%s (%s order)", meta.Executor, meta.Ordering)
}

// PrintTestList prints the registered test names as a tree.
// Names in failed (from the last run) are marked with [F].
func (f *Formatter) PrintTestList(names []string, failed map[string]struct{}) {
	green.Fprintf(f.out, "Found %d test(s):\n\n", len(names))

	for i, name := range names {
		connector := "├── "
		if i == len(names)-1 {
			connector = "└── "
		}

		var b strings.Builder
		b.WriteString(connector)
		b.WriteString(name)
		if _, ok := failed[name]; ok {
			b.WriteString(" ")
			b.WriteString(red.Sprint("[F]"))
		}
		cyan.Fprintln(f.out, b.String())
	}
}

// FailedNames collects the names of the failed tests of a stored run
func FailedNames(record *domain.RunRecord) map[string]struct{} {
	failed := make(map[string]struct{})
	if record == nil {
		return failed
	}
	for _, failure := range record.Details {
		failed[failure.TestName] = struct{}{}
	}
	return failed
}

// Warn prints a yellow notice line
func Warn(out io.Writer, format string, args ...any) {
	yellow.Fprintf(out, format+"\n", args...)
}
