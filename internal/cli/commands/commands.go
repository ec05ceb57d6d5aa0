package commands

import (
	"ctest/internal/cli"
	"ctest/internal/config"
	"ctest/internal/execution"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run     *RunCommand
	List    *ListCommand
	Stats   *StatsCommand
	Migrate *MigrateCommand
	Faills  *FaillsCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	runner := execution.NewRunner()

	return &Commands{
		Run:     NewRunCommand(cfg, runner, errorViewer),
		List:    NewListCommand(cfg),
		Stats:   NewStatsCommand(cfg),
		Migrate: NewMigrateCommand(cfg),
		Faills:  NewFaillsCommand(cfg, errorViewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.PersistentFlags().StringVar(&flags.ProjectPath, "project", config.DefaultProjectPath, "Directory holding .env, ctest.yaml and the storage folder")
	rootCmd.PersistentFlags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Load config from files and environment, then apply flags after parsing
		loaded, err := config.Load(flags.ProjectPath)
		if err != nil {
			return err
		}
		*cfg = *loaded
		cfg.ApplyFlags(flags.ToConfigFlags())
		if !cfg.Color {
			color.NoColor = true
		}
		return cfg.Validate()
	}

	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the bundled test suite",
		Long:  "Execute the registered tests sequentially or concurrently and print one line per test plus a summary",
		RunE:  c.Run.Execute,
	}
	runCmd.Flags().BoolVarP(&flags.Concurrent, "concurrent", "c", false, "Run every test on its own goroutine")
	runCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print a PASS line for passing tests")
	runCmd.Flags().StringVarP(&flags.Ordering, "ordering", "o", "", "Report order of concurrent runs: registration or completion")
	runCmd.Flags().IntVar(&flags.Capacity, "capacity", 0, "Registry capacity (registering more tests is fatal)")
	runCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by name pattern (supports wildcards, e.g., 'add_*' or '*div*')")
	runCmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar on stderr during concurrent runs (ignored with --ordering completion)")
	runCmd.Flags().BoolVar(&flags.Slow, "slow", false, "Make every arithmetic test sleep for one second")
	runCmd.Flags().BoolVar(&flags.Failing, "with-failures", false, "Also register tests that fail on purpose")
	runCmd.Flags().BoolVar(&flags.OpenFaills, "open-faills", false, "Open the faills viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered tests",
		Long:  "List the registered tests without executing them; tests that failed in the last run are marked",
		RunE:  c.List.Execute,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by name pattern (supports wildcards, e.g., 'add_*' or '*div*')")
	listCmd.Flags().BoolVar(&flags.Failing, "with-failures", false, "Also list tests that fail on purpose")
	rootCmd.AddCommand(listCmd)

	// Stats command
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show statistics of the last run",
		RunE:  c.Stats.Execute,
	}
	rootCmd.AddCommand(statsCmd)

	// Migrate command
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the MySQL result schema",
		Long:  "Create the database named in CTEST_MYSQL_DSN and the tables used by the mysql storage driver",
		RunE:  c.Migrate.Execute,
	}
	rootCmd.AddCommand(migrateCmd)

	// Faills command
	faillsCmd := &cobra.Command{
		Use:   "faills",
		Short: "View test failures interactively",
		Long:  "Display test failures from the last test run in an interactive viewer",
		RunE:  c.Faills.Execute,
	}
	rootCmd.AddCommand(faillsCmd)
}
