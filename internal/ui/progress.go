package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar shows how many tests of a concurrent run are running and how many finished.
// Its methods are safe for concurrent use by workers.
type ProgressBar struct {
	mu      sync.Mutex
	bar     *progressbar.ProgressBar
	running int
	passed  int
	failed  int
}

// NewProgressBar creates a new progress bar for count tests, drawn on w
func NewProgressBar(count int, w io.Writer) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(describe(0, 0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(w),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

// Start marks one more test as running
func (p *ProgressBar) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.running++
	p.bar.Describe(describe(p.running, p.passed, p.failed))
}

// Done moves one running test to passed or failed and advances the bar
func (p *ProgressBar) Done(passed bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.running--
	if passed {
		p.passed++
	} else {
		p.failed++
	}
	_ = p.bar.Set(p.passed + p.failed)
	p.bar.Describe(describe(p.running, p.passed, p.failed))
}

// Counts returns the running, passed and failed counters
func (p *ProgressBar) Counts() (running, passed, failed int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running, p.passed, p.failed
}

// Position returns how far the bar has advanced out of its maximum
func (p *ProgressBar) Position() (current, max int64) {
	state := p.bar.State()
	return state.CurrentNum, state.Max
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	_ = p.bar.Finish()
}

func describe(running, passed, failed int) string {
	return color.CyanString("Running tests: ") +
		color.YellowString("[running: %d", running) +
		" | " +
		color.GreenString("passed: %d", passed) +
		" | " +
		color.RedString("failed: %d]", failed)
}
