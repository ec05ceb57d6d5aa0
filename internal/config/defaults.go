package config

const (
	// DefaultProjectPath is the directory holding .env and ctest.yaml
	DefaultProjectPath = "."
	// DefaultLabel is the label printed in the summary line
	DefaultLabel = "ctest"
	// DefaultCapacity is the default registry capacity
	DefaultCapacity = 1024
	// DefaultOrdering is the reporting order of concurrent runs
	DefaultOrdering = "registration"
	// DefaultOutputFile is the default run record file name, without extension
	DefaultOutputFile = "test-results"
	// DefaultOutputDir is the default output directory
	DefaultOutputDir = "storage"
	// DefaultStorageDriver is the default run record backend
	DefaultStorageDriver = "json"
	// ConfigName is the name of the optional config file, without extension
	ConfigName = "ctest"
	// EnvPrefix prefixes every environment override, e.g. CTEST_CAPACITY
	EnvPrefix = "CTEST"
)
