package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctest/internal/config"
	"ctest/internal/domain"
)

func sampleRecord() *domain.RunRecord {
	results := []domain.TestResult{
		{Index: 0, Name: "t1", Outcome: domain.Success(), Duration: time.Millisecond},
		{Index: 1, Name: "t2", Outcome: domain.Fail(domain.Failure{
			Kind:    domain.KindEquality,
			Message: "Assertion failed: left is different from right (left: 'x', right: 'y')",
			File:    "suite_test.go",
			Line:    9,
		}), Duration: 2 * time.Millisecond},
	}
	summary := domain.Summary{Label: "suite", Ran: 2, Passed: 1, Failed: 1}
	return NewRecord(RunInfo{Label: "suite", Executor: "sequential"}, results, summary, 3*time.Millisecond)
}

func TestNewRecord(t *testing.T) {
	record := sampleRecord()

	_, err := uuid.Parse(record.Meta.RunID)
	assert.NoError(t, err)
	assert.Equal(t, 2, record.Meta.TotalTests)
	assert.Equal(t, 1, record.Meta.FailedTests)
	require.Len(t, record.Details, 1)
	assert.Equal(t, "t2", record.Details[0].TestName)
	assert.Equal(t, "equality", record.Details[0].Kind)
	assert.Equal(t, 9, record.Details[0].Line)
}

func testConfig(t *testing.T, driver string) *config.Config {
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	cfg.StorageDriver = driver
	return cfg
}

func TestFileStorage_RoundTrip(t *testing.T) {
	for _, driver := range []string{"json", "yaml"} {
		t.Run(driver, func(t *testing.T) {
			cfg := testConfig(t, driver)
			st, err := New(cfg)
			require.NoError(t, err)

			record := sampleRecord()
			record.Details[0].Resolved = true
			require.NoError(t, st.Save(record))

			_, err = os.Stat(cfg.GetOutputPath())
			require.NoError(t, err)
			assert.Equal(t, "."+driver, filepath.Ext(cfg.GetOutputPath()))

			loaded, err := st.Load()
			require.NoError(t, err)
			assert.Equal(t, record, loaded)
		})
	}
}

func TestFileStorage_LoadMissing(t *testing.T) {
	st := NewJSONStorage(testConfig(t, "json"))
	_, err := st.Load()
	assert.Error(t, err)
}

func TestNew_Drivers(t *testing.T) {
	cfg := testConfig(t, "mysql")
	cfg.MySQLDSN = "root:@tcp(127.0.0.1:3306)/ctest"
	st, err := New(cfg)
	require.NoError(t, err)
	assert.IsType(t, &MySQLStorage{}, st)

	cfg.StorageDriver = "redis"
	_, err = New(cfg)
	assert.Error(t, err)
}

func TestMySQLStorage_MigrateRejectsBadDSN(t *testing.T) {
	assert.Error(t, NewMySQLStorage("root:@tcp(127.0.0.1:3306)/").Migrate(context.Background()))
	assert.Error(t, NewMySQLStorage("root:@tcp(127.0.0.1:3306)/x;DROP").Migrate(context.Background()))
}

func TestIsValidDatabaseName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"ctest", true},
		{"ctest_results_1", true},
		{"", false},
		{"bad;name", false},
		{"drop_me", false},
		{"a`b", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, isValidDatabaseName(tt.name))
		})
	}
}
