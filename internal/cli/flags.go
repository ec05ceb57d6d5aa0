package cli

import "ctest/internal/config"

// Flags holds command-line flags
type Flags struct {
	ProjectPath string
	Capacity    int
	Verbose     bool
	Concurrent  bool
	Ordering    string
	Progress    bool
	NoColor     bool
	NameFilter  string
	Slow        bool
	Failing     bool
	OpenFaills  bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Capacity:   f.Capacity,
		Verbose:    f.Verbose,
		Concurrent: f.Concurrent,
		Ordering:   f.Ordering,
		Progress:   f.Progress,
		NoColor:    f.NoColor,
		NameFilter: f.NameFilter,
		Slow:       f.Slow,
		Failing:    f.Failing,
		OpenFaills: f.OpenFaills,
	}
}
