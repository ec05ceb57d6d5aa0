package commands

import (
	"github.com/spf13/cobra"

	"ctest/internal/config"
	"ctest/internal/storage"
)

// FaillsCommand handles the faills command
type FaillsCommand struct {
	config *config.Config
	viewer ViewerFunc
}

// NewFaillsCommand creates a new FaillsCommand
func NewFaillsCommand(cfg *config.Config, viewer ViewerFunc) *FaillsCommand {
	return &FaillsCommand{config: cfg, viewer: viewer}
}

// Execute runs the command
func (fc *FaillsCommand) Execute(cmd *cobra.Command, args []string) error {
	st, err := storage.New(fc.config)
	if err != nil {
		return err
	}
	record, err := st.Load()
	if err != nil {
		return err
	}

	return fc.viewer(st, cmd.OutOrStdout()).View(record)
}
