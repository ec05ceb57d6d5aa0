package commands

import (
	"github.com/spf13/cobra"

	"ctest/internal/config"
	"ctest/internal/domain"
	"ctest/internal/storage"
	"ctest/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config *config.Config
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config) *ListCommand {
	return &ListCommand{config: cfg}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	reg := buildRegistry(lc.config)
	if reg.Len() == 0 {
		ui.Warn(out, "No tests found")
		return nil
	}

	// Mark failures of the last run when one is stored
	var last *domain.RunRecord
	if st, err := storage.New(lc.config); err == nil {
		last, _ = st.Load()
	}

	ui.NewFormatter(out).PrintTestList(reg.Names(), ui.FailedNames(last))
	return nil
}
