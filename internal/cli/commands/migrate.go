package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ctest/internal/config"
	"ctest/internal/storage"
)

// MigrateCommand handles the migrate command
type MigrateCommand struct {
	config *config.Config
}

// NewMigrateCommand creates a new MigrateCommand
func NewMigrateCommand(cfg *config.Config) *MigrateCommand {
	return &MigrateCommand{config: cfg}
}

// Execute runs the command
func (mc *MigrateCommand) Execute(cmd *cobra.Command, args []string) error {
	if mc.config.StorageDriver != "mysql" {
		return fmt.Errorf("migrate needs the mysql storage driver (got %q)", mc.config.StorageDriver)
	}

	if err := storage.NewMySQLStorage(mc.config.MySQLDSN).Migrate(cmd.Context()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "✓ Result schema is up to date")
	return nil
}
