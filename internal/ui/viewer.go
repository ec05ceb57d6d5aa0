package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"ctest/internal/domain"
)

// Viewer displays stored failures interactively
type Viewer interface {
	View(record *domain.RunRecord) error
}

// RecordSaver persists a run record after the viewer changed it
type RecordSaver interface {
	Save(record *domain.RunRecord) error
}

// ErrorViewer displays test failures in an interactive TUI
type ErrorViewer struct {
	saver RecordSaver
	out   io.Writer
}

// NewErrorViewer creates a new ErrorViewer. Resolved marks are written back through saver.
func NewErrorViewer(saver RecordSaver, out io.Writer) *ErrorViewer {
	return &ErrorViewer{saver: saver, out: out}
}

// View displays test failures in an interactive TUI
func (ev *ErrorViewer) View(record *domain.RunRecord) error {
	if len(record.Details) == 0 {
		green.Fprintln(ev.out, "✓ No test failures found!")
		return nil
	}

	app := tview.NewApplication()

	// List of failed tests (left side)
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i := range record.Details {
		list.AddItem(listItemText(record, i), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	// Stats header and failure details (right side)
	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)
	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)
	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)
	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)
	updateHeader := func() {
		headerView.SetText(headerText(record))
	}
	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(record.Details) {
			statsView.SetText(formatFailureStats(record.Meta, record.Details[index]))
			detailsView.SetText(formatFailureDetails(record.Details[index]))
		}
	}

	var saveErr error
	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if toggleResolved(record, index) {
					list.SetItemText(index, listItemText(record, index), "")
					updateHeader()
					updateDetails()
					if err := ev.saver.Save(record); err != nil {
						saveErr = err
					}
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if saveErr != nil {
		return fmt.Errorf("failed to save resolved status: %w", saveErr)
	}
	return nil
}

// toggleResolved flips the resolved mark of failure index. It returns false for an invalid index.
func toggleResolved(record *domain.RunRecord, index int) bool {
	if index < 0 || index >= len(record.Details) {
		return false
	}
	record.Details[index].Resolved = !record.Details[index].Resolved
	return true
}

func countUnresolved(record *domain.RunRecord) int {
	count := 0
	for _, failure := range record.Details {
		if !failure.Resolved {
			count++
		}
	}
	return count
}

func headerText(record *domain.RunRecord) string {
	return fmt.Sprintf(" Test Failures (%d total, %d unresolved) | Use ↑↓ to navigate, [yellow]R[white] to mark resolved, → to view details, ← to go back, Ctrl+C to exit ",
		len(record.Details), countUnresolved(record))
}

func listItemText(record *domain.RunRecord, index int) string {
	failure := record.Details[index]
	name := failure.TestName
	if name == "" {
		name = fmt.Sprintf("Test %d", index+1)
	}
	if failure.Resolved {
		return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, name)
	}
	return fmt.Sprintf("[yellow]%d.[white] %s", index+1, name)
}

// formatFailureDetails formats a failure for display using tview color tags ([red], [cyan], etc.)
func formatFailureDetails(failure domain.TestFailure) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "[red]✗ Test: %s[white]\n\n", tview.Escape(failure.TestName))
	fmt.Fprintf(w, "[cyan]Kind: %s[white]\n", failure.Kind)
	if failure.File != "" && failure.Line > 0 {
		fmt.Fprintf(w, "[yellow]Location: %s:%d[white]\n", failure.File, failure.Line)
	}
	fmt.Fprintf(w, "[cyan]Duration: %.3fs[white]\n\n", failure.Seconds)
	if failure.Message != "" {
		fmt.Fprintf(w, "[yellow]Message:[white]\n%s\n", tview.Escape(failure.Message))
	}

	w.Flush()
	return builder.String()
}

// formatFailureStats formats the stats header for a failure
func formatFailureStats(meta domain.RunMeta, failure domain.TestFailure) string {
	label := meta.Label
	if label == "" {
		label = "Unknown suite"
	}
	return fmt.Sprintf("[cyan]suite:[white] [yellow]%s[white] :: [yellow]%s[white] (#%d)\n",
		tview.Escape(label), tview.Escape(failure.TestName), failure.Index+1)
}
