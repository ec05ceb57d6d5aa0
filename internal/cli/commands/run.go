package commands

import (
	"errors"
	"fmt"
	"io"

	"ctest/internal/config"
	"ctest/internal/execution"
	"ctest/internal/registry"
	"ctest/internal/storage"
	"ctest/internal/ui"

	"github.com/spf13/cobra"
)

// ErrTestsFailed is returned by run when at least one test failed
var ErrTestsFailed = errors.New("tests failed")

// ViewerFunc builds the failure viewer; marks made in the viewer are saved through saver
type ViewerFunc func(saver ui.RecordSaver, out io.Writer) ui.Viewer

func errorViewer(saver ui.RecordSaver, out io.Writer) ui.Viewer {
	return ui.NewErrorViewer(saver, out)
}

// RunCommand handles the run command
type RunCommand struct {
	config *config.Config
	runner *execution.Runner
	viewer ViewerFunc
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, runner *execution.Runner, viewer ViewerFunc) *RunCommand {
	return &RunCommand{
		config: cfg,
		runner: runner,
		viewer: viewer,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	reg := buildRegistry(rc.config)
	if reg.Len() == 0 {
		ui.Warn(out, "No tests to execute")
		return nil
	}

	executor, ordering, err := rc.executor(cmd, reg)
	if err != nil {
		return err
	}

	results, summary, duration := executor.Execute(rc.config.Label, rc.config.Verbose)

	st, err := storage.New(rc.config)
	if err != nil {
		return err
	}
	record := storage.NewRecord(storage.RunInfo{
		Label:    rc.config.Label,
		Executor: executor.Name(),
		Ordering: ordering,
	}, results, summary, duration)
	if err := st.Save(record); err != nil {
		return fmt.Errorf("failed to save test results: %w", err)
	}

	if summary.OK() {
		return nil
	}
	if rc.config.Flags.OpenFaills {
		if err := rc.viewer(st, out).View(record); err != nil {
			return err
		}
	}
	return ErrTestsFailed
}

// executor builds the configured strategy over reg
func (rc *RunCommand) executor(cmd *cobra.Command, reg *registry.Registry) (execution.Executor, string, error) {
	reporter := ui.NewReporter(cmd.OutOrStdout(), rc.config.Color)

	if !rc.config.Concurrent {
		return execution.NewSequential(reg, reporter, rc.runner), "", nil
	}

	ordering, err := execution.ParseOrdering(rc.config.Ordering)
	if err != nil {
		return nil, "", err
	}
	concurrent := execution.NewConcurrent(reg, reporter, rc.runner, ordering)
	if rc.config.Progress {
		if concurrent.Ordering() == execution.OrderCompletion {
			ui.Warn(cmd.ErrOrStderr(), "--progress is ignored with completion ordering")
		} else {
			concurrent.SetProgress(ui.NewProgressBar(reg.Len(), cmd.ErrOrStderr()))
		}
	}
	return concurrent, concurrent.Ordering().String(), nil
}
