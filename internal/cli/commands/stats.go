package commands

import (
	"github.com/spf13/cobra"

	"ctest/internal/config"
	"ctest/internal/storage"
	"ctest/internal/ui"
)

// StatsCommand handles the stats command
type StatsCommand struct {
	config *config.Config
}

// NewStatsCommand creates a new StatsCommand
func NewStatsCommand(cfg *config.Config) *StatsCommand {
	return &StatsCommand{config: cfg}
}

// Execute runs the command
func (sc *StatsCommand) Execute(cmd *cobra.Command, args []string) error {
	st, err := storage.New(sc.config)
	if err != nil {
		return err
	}
	record, err := st.Load()
	if err != nil {
		return err
	}

	ui.NewFormatter(cmd.OutOrStdout()).PrintStats(record)
	return nil
}
