package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"ctest/internal/config"
	"ctest/internal/domain"
)

// Storage persists and loads run records (e.g. for the stats table and the faills viewer).
type Storage interface {
	Save(record *domain.RunRecord) error
	Load() (*domain.RunRecord, error)
}

// New returns the Storage selected by the config's storage driver
func New(cfg *config.Config) (Storage, error) {
	switch cfg.StorageDriver {
	case "", "json":
		return NewJSONStorage(cfg), nil
	case "yaml":
		return NewYAMLStorage(cfg), nil
	case "mysql":
		return NewMySQLStorage(cfg.MySQLDSN), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

// RunInfo describes how a run was executed
type RunInfo struct {
	Label    string
	Executor string
	Ordering string
}

// NewRecord builds the stored form of a finished run
func NewRecord(info RunInfo, results []domain.TestResult, summary domain.Summary, duration time.Duration) *domain.RunRecord {
	failures := make([]domain.TestFailure, 0, summary.Failed)
	for _, r := range results {
		if f, ok := domain.NewTestFailure(r); ok {
			failures = append(failures, f)
		}
	}

	return &domain.RunRecord{
		Meta: domain.RunMeta{
			RunID:           uuid.NewString(),
			Label:           info.Label,
			Executor:        info.Executor,
			Ordering:        info.Ordering,
			TotalTests:      summary.Ran,
			PassedTests:     summary.Passed,
			FailedTests:     summary.Failed,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Timestamp:       time.Now().Format(time.RFC3339),
		},
		Details: failures,
	}
}
