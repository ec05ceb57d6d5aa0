package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string `mapstructure:"project_path"`

	// Run settings
	Label      string `mapstructure:"label" validate:"required"`
	Capacity   int    `mapstructure:"capacity" validate:"gte=1"`
	Verbose    bool   `mapstructure:"verbose"`
	Concurrent bool   `mapstructure:"concurrent"`
	Ordering   string `mapstructure:"ordering" validate:"oneof=registration completion"`
	Progress   bool   `mapstructure:"progress"`
	Color      bool   `mapstructure:"color"`

	// Output settings
	OutputDir     string `mapstructure:"output_dir" validate:"required"`
	OutputFile    string `mapstructure:"output_file" validate:"required"`
	StorageDriver string `mapstructure:"storage" validate:"oneof=json yaml mysql"`
	MySQLDSN      string `mapstructure:"mysql_dsn" validate:"required_if=StorageDriver mysql"`

	// Command flags
	Flags Flags `mapstructure:"-"`
}

// Flags holds command-line flags
type Flags struct {
	Capacity   int
	Verbose    bool
	Concurrent bool
	Ordering   string
	Progress   bool
	NoColor    bool
	NameFilter string
	Slow       bool
	Failing    bool
	OpenFaills bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath:   DefaultProjectPath,
		Label:         DefaultLabel,
		Capacity:      DefaultCapacity,
		Ordering:      DefaultOrdering,
		Color:         true,
		OutputDir:     DefaultOutputDir,
		OutputFile:    DefaultOutputFile,
		StorageDriver: DefaultStorageDriver,
	}
}

// Load creates a config from defaults, the project's .env file, an optional ctest.yaml and
// CTEST_* environment variables, in that order of increasing precedence.
func Load(projectPath string) (*Config, error) {
	cfg := New()
	if projectPath != "" {
		cfg.ProjectPath = projectPath
	}

	// .env file might not exist, that's okay - use environment variables
	_ = godotenv.Load(filepath.Join(cfg.ProjectPath, ".env"))

	v := viper.New()
	v.SetConfigName(ConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(cfg.ProjectPath)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("project_path", cfg.ProjectPath)
	v.SetDefault("label", cfg.Label)
	v.SetDefault("capacity", cfg.Capacity)
	v.SetDefault("verbose", cfg.Verbose)
	v.SetDefault("concurrent", cfg.Concurrent)
	v.SetDefault("ordering", cfg.Ordering)
	v.SetDefault("progress", cfg.Progress)
	v.SetDefault("color", cfg.Color)
	v.SetDefault("output_dir", cfg.OutputDir)
	v.SetDefault("output_file", cfg.OutputFile)
	v.SetDefault("storage", cfg.StorageDriver)
	v.SetDefault("mysql_dsn", cfg.MySQLDSN)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyFlags copies command-line flags over the loaded values
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.Capacity > 0 {
		c.Capacity = flags.Capacity
	}
	if flags.Ordering != "" {
		c.Ordering = flags.Ordering
	}
	c.Verbose = c.Verbose || flags.Verbose
	c.Concurrent = c.Concurrent || flags.Concurrent
	c.Progress = c.Progress || flags.Progress
	if flags.NoColor {
		c.Color = false
	}
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// GetOutputPath returns the full path of the run record file. The extension follows the
// storage driver unless the configured file name already has one.
// Resolves to an absolute path so run, stats and faills always use the same file.
func (c *Config) GetOutputPath() string {
	name := c.OutputFile
	if filepath.Ext(name) == "" {
		ext := ".json"
		if c.StorageDriver == "yaml" {
			ext = ".yaml"
		}
		name += ext
	}
	p := filepath.Join(c.ProjectPath, c.OutputDir, name)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
