package commands

import (
	"time"

	"ctest/internal/config"
	"ctest/internal/registry"
	"ctest/internal/samples"
)

// buildRegistry registers the bundled suite and applies the name filter
func buildRegistry(cfg *config.Config) *registry.Registry {
	reg := registry.New(cfg.Capacity)

	opts := samples.Options{Failing: cfg.Flags.Failing}
	if cfg.Flags.Slow {
		opts.Delay = time.Second
	}
	samples.Register(reg, opts)

	return reg.Filter(cfg.Flags.NameFilter)
}
