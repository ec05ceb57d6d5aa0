package storage

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ctest/internal/config"
	"ctest/internal/domain"
)

// YAMLStorage stores the last run in a YAML file under the configured output path.
type YAMLStorage struct {
	cfg *config.Config
}

// NewYAMLStorage returns a Storage that reads/writes the config's output YAML path.
func NewYAMLStorage(cfg *config.Config) *YAMLStorage {
	return &YAMLStorage{cfg: cfg}
}

// Save writes the record to the configured YAML output file.
func (s *YAMLStorage) Save(record *domain.RunRecord) error {
	data, err := yaml.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	return writeFile(s.cfg.GetOutputPath(), data)
}

// Load reads the last run from the configured YAML output file.
func (s *YAMLStorage) Load() (*domain.RunRecord, error) {
	data, err := os.ReadFile(s.cfg.GetOutputPath())
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var record domain.RunRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &record, nil
}
