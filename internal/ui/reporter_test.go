package ui

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"ctest/internal/domain"
)

func failedResult(name string) domain.TestResult {
	return domain.TestResult{
		Name: name,
		Outcome: domain.Fail(domain.Failure{
			Kind:    domain.KindEquality,
			Message: "Assertion failed: left is different from right (left: 'x', right: 'y')",
			File:    "suite_test.go",
			Line:    42,
		}),
	}
}

func TestReporter_Verbose(t *testing.T) {
	var buf bytes.Buffer
	tally := NewReporter(&buf, false).Begin("suite", true)

	tally.Record(domain.TestResult{Name: "t1", Outcome: domain.Success()})
	tally.Record(failedResult("t2"))
	summary := tally.Finish()

	expected := "PASS: t1\n" +
		"FAILURE: t2: suite_test.go:42: Assertion failed: left is different from right (left: 'x', right: 'y')\n" +
		"suite: 2 tests: 1 PASS, 1 FAIL\n"
	assert.Equal(t, expected, buf.String())
	assert.Equal(t, domain.Summary{Label: "suite", Ran: 2, Passed: 1, Failed: 1}, summary)
	assert.False(t, summary.OK())
}

func TestReporter_QuietHidesPasses(t *testing.T) {
	var buf bytes.Buffer
	tally := NewReporter(&buf, false).Begin("quiet", false)

	tally.Record(domain.TestResult{Name: "t1", Outcome: domain.Success()})
	summary := tally.Finish()

	assert.Equal(t, "quiet: 1 tests: 1 PASS, 0 FAIL\n", buf.String())
	assert.True(t, summary.OK())
}

func TestReporter_CountersArePerRun(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)

	first := r.Begin("a", false)
	first.Record(failedResult("x"))
	first.Finish()

	second := r.Begin("b", false)
	summary := second.Finish()
	assert.Equal(t, domain.Summary{Label: "b"}, summary)
}

func TestReporter_Colored(t *testing.T) {
	noColor := color.NoColor
	t.Cleanup(func() { color.NoColor = noColor })

	color.NoColor = false
	var buf bytes.Buffer
	tally := NewReporter(&buf, true).Begin("c", true)
	tally.Record(domain.TestResult{Name: "t1", Outcome: domain.Success()})

	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "PASS")
}

func TestReporter_ColoredFollowsTerminalDetection(t *testing.T) {
	noColor := color.NoColor
	t.Cleanup(func() { color.NoColor = noColor })

	color.NoColor = true
	var buf bytes.Buffer
	tally := NewReporter(&buf, true).Begin("c", true)
	tally.Record(domain.TestResult{Name: "t1", Outcome: domain.Success()})
	tally.Record(failedResult("t2"))
	tally.Finish()

	assert.NotContains(t, buf.String(), "\x1b[")
	assert.Equal(t, "PASS: t1\n"+
		"FAILURE: t2: suite_test.go:42: Assertion failed: left is different from right (left: 'x', right: 'y')\n"+
		"c: 2 tests: 1 PASS, 1 FAIL\n", buf.String())
}

func TestReporter_ConcurrentRecordKeepsLinesIntact(t *testing.T) {
	var buf bytes.Buffer
	tally := NewReporter(&buf, false).Begin("par", true)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tally.Record(failedResult("t"))
		}()
	}
	wg.Wait()
	summary := tally.Finish()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 51)
	for _, line := range lines[:50] {
		assert.True(t, strings.HasPrefix(line, "FAILURE: t: suite_test.go:42: "), line)
	}
	assert.Equal(t, 50, summary.Failed)
}
