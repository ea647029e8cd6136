package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dendrascience/sorts/internal/config"
	"github.com/dendrascience/sorts/internal/logging"
	"github.com/dendrascience/sorts/version"
)

// env is the state shared by every subcommand. It is filled in by the root
// command's PersistentPreRunE before any RunE executes; until then logger
// discards everything.
type env struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *zap.Logger
}

func (e *env) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(e.configPath)
	if err != nil {
		return err
	}
	level := cfg.Logging.Level
	if cmd.Flags().Changed("log-level") {
		level = e.logLevel
	}
	logger, err := logging.New(level, cfg.Logging.Development)
	if err != nil {
		return err
	}
	e.cfg = cfg
	e.logger = logger
	e.logger.Debug("configuration loaded",
		zap.String("config", e.configPath),
		zap.String("command", cmd.Name()),
		zap.String("algorithm", cfg.Algorithm))
	return nil
}

// NewRootCmd creates and returns the root cobra command for the sorts CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	e := &env{logger: logging.Nop()}

	rootCmd := &cobra.Command{
		Use:   "sorts",
		Short: "sorts - classic array algorithms from the command line",
		Long: `sorts runs classic array algorithms over integer sequences.

It sorts with quicksort or mergesort, checks order, finds maxima, filters
values by decimal digit and locates balance indexes. Sequences can be typed
as arguments, piped on stdin, or generated and stored as dataset files.

Use subcommands to perform different operations:
  - sort, ordered, max, filter, balance: run an algorithm
  - generate, list, inspect: manage datasets
  - bench: compare quicksort and mergesort
  - config: show or write the effective configuration`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = e.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&e.configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&e.logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	groupAlgorithms := "algorithms"
	groupDatasets := "datasets"
	groupUtilities := "utilities"

	// Add command groups for better organization
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupAlgorithms,
		Title: "Algorithms",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupDatasets,
		Title: "Datasets",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	for _, c := range []*cobra.Command{
		NewSortCmd(e),
		NewOrderedCmd(e),
		NewMaxCmd(e),
		NewFilterCmd(e),
		NewBalanceCmd(e),
	} {
		c.GroupID = groupAlgorithms
		rootCmd.AddCommand(c)
	}
	for _, c := range []*cobra.Command{
		NewGenerateCmd(e),
		NewListCmd(e),
		NewInspectCmd(e),
	} {
		c.GroupID = groupDatasets
		rootCmd.AddCommand(c)
	}
	for _, c := range []*cobra.Command{
		NewBenchCmd(e),
		NewConfigCmd(e),
		NewVersionCmd(),
	} {
		c.GroupID = groupUtilities
		rootCmd.AddCommand(c)
	}

	return rootCmd
}
