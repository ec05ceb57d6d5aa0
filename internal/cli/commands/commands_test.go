package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctest/internal/cli"
	"ctest/internal/config"
	"ctest/internal/domain"
	"ctest/internal/ui"
)

func execute(t *testing.T, project string, args ...string) (string, error) {
	t.Helper()
	return executeArgs(t, append(args, "--project", project, "--no-color")...)
}

func executeArgs(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWith(t, nil, args...)
}

func executeWith(t *testing.T, setup func(*Commands), args ...string) (string, error) {
	t.Helper()
	rootCmd := &cobra.Command{Use: "ctest", SilenceUsage: true, SilenceErrors: true}
	cfg := config.New()
	var flags cli.Flags
	cmds := NewCommands(cfg)
	if setup != nil {
		setup(cmds)
	}
	cmds.Register(rootCmd, &flags, cfg)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRun_Sequential(t *testing.T) {
	project := t.TempDir()
	out, err := execute(t, project, "run", "-v")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "PASS: add_test", lines[0])
	assert.Equal(t, "PASS: strfind_missing_test", lines[5])
	assert.Equal(t, "ctest: 6 tests: 6 PASS, 0 FAIL", lines[6])

	_, err = os.Stat(filepath.Join(project, "storage", "test-results.json"))
	assert.NoError(t, err)
}

func TestRun_ConcurrentWithFailures(t *testing.T) {
	project := t.TempDir()
	out, err := execute(t, project, "run", "--concurrent", "--with-failures")
	require.ErrorIs(t, err, ErrTestsFailed)

	assert.Contains(t, out, "FAILURE: div_rounding_test: suite.go:")
	assert.Contains(t, out, "ctest: 8 tests: 6 PASS, 2 FAIL")
	assert.Less(t, strings.Index(out, "div_rounding_test"), strings.Index(out, "sub_range_test"))

	stats, err := execute(t, project, "stats")
	require.NoError(t, err)
	assert.Contains(t, stats, "concurrent (registration order)")
	assert.Contains(t, stats, "2 test(s) failed")

	list, err := execute(t, project, "list", "--with-failures")
	require.NoError(t, err)
	assert.Contains(t, list, "div_rounding_test [F]")
	assert.NotContains(t, list, "add_test [F]")
}

func TestRun_FilterAndLabel(t *testing.T) {
	project := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(project, "ctest.yaml"), []byte("label: nightly\nstorage: yaml\n"), 0644))

	out, err := execute(t, project, "run", "--filter", "*str*")
	require.NoError(t, err)
	assert.Equal(t, "nightly: 2 tests: 2 PASS, 0 FAIL\n", out)

	_, err = os.Stat(filepath.Join(project, "storage", "test-results.yaml"))
	assert.NoError(t, err)
}

func TestRun_RedirectedOutputIsPlain(t *testing.T) {
	out, err := executeArgs(t, "run", "-v", "--filter", "add_*", "--project", t.TempDir())
	require.NoError(t, err)

	assert.NotContains(t, out, "\x1b[")
	assert.Equal(t, "PASS: add_test\nctest: 1 tests: 1 PASS, 0 FAIL\n", out)
}

func TestRun_ProgressWithCompletionOrderingIsIgnored(t *testing.T) {
	out, err := execute(t, t.TempDir(), "run", "-c", "-o", "completion", "--progress")
	require.NoError(t, err)

	assert.Contains(t, out, "--progress is ignored with completion ordering")
	assert.NotContains(t, out, "Running tests")
	assert.Contains(t, out, "ctest: 6 tests: 6 PASS, 0 FAIL")
}

func TestRun_ProgressWithRegistrationOrdering(t *testing.T) {
	out, err := execute(t, t.TempDir(), "run", "-c", "--progress")
	require.NoError(t, err)

	assert.Contains(t, out, "passed: 6")
	assert.Contains(t, out, "ctest: 6 tests: 6 PASS, 0 FAIL")
}

func TestRun_NoMatchingTests(t *testing.T) {
	out, err := execute(t, t.TempDir(), "run", "--filter", "nothing_matches")
	require.NoError(t, err)
	assert.Contains(t, out, "No tests to execute")
}

func TestRun_InvalidOrdering(t *testing.T) {
	_, err := execute(t, t.TempDir(), "run", "--concurrent", "--ordering", "random")
	assert.Error(t, err)
}

func TestStats_NoStoredRun(t *testing.T) {
	_, err := execute(t, t.TempDir(), "stats")
	assert.Error(t, err)
}

func TestMigrate_RequiresMySQL(t *testing.T) {
	_, err := execute(t, t.TempDir(), "migrate")
	assert.ErrorContains(t, err, "mysql")
}

type recordingViewer struct {
	records []*domain.RunRecord
}

func (v *recordingViewer) View(record *domain.RunRecord) error {
	v.records = append(v.records, record)
	return nil
}

func useViewer(v *recordingViewer) func(*Commands) {
	viewer := func(ui.RecordSaver, io.Writer) ui.Viewer { return v }
	return func(c *Commands) {
		c.Run.viewer = viewer
		c.Faills.viewer = viewer
	}
}

func TestRun_OpenFaillsShowsFailedRun(t *testing.T) {
	project := t.TempDir()
	viewer := &recordingViewer{}

	_, err := executeWith(t, useViewer(viewer), "run", "--with-failures", "--open-faills", "--project", project, "--no-color")
	require.ErrorIs(t, err, ErrTestsFailed)
	require.Len(t, viewer.records, 1)
	assert.Len(t, viewer.records[0].Details, 2)
	assert.Equal(t, "sequential", viewer.records[0].Meta.Executor)

	_, err = executeWith(t, useViewer(viewer), "faills", "--project", project, "--no-color")
	require.NoError(t, err)
	require.Len(t, viewer.records, 2)
	assert.Equal(t, viewer.records[0].Meta.RunID, viewer.records[1].Meta.RunID)
}

func TestRun_OpenFaillsSkippedWhenAllPass(t *testing.T) {
	viewer := &recordingViewer{}

	_, err := executeWith(t, useViewer(viewer), "run", "--open-faills", "--project", t.TempDir(), "--no-color")
	require.NoError(t, err)
	assert.Empty(t, viewer.records)
}
