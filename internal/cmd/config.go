package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// NewConfigCmd creates and returns the config subcommand for the sorts CLI.
func NewConfigCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or write the effective configuration",
		Long: `Show or write the configuration the other commands run with: the
built-in defaults, overlaid by --config when given.`,
	}
	cmd.AddCommand(newConfigShowCmd(e), newConfigInitCmd(e))
	return cmd
}

func newConfigShowCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(e.cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newConfigInitCmd(e *env) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [PATH]",
		Short: "Write the effective configuration to a file",
		Long: `Write the effective configuration to PATH (default sorts.yaml) so it
can be edited and passed back with --config. An existing file is only
replaced with --force.`,
		Example: `  sorts config init
  sorts --config base.yaml config init tuned.yaml --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "sorts.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to replace it", path)
			}
			if err := e.cfg.Save(path); err != nil {
				return err
			}
			e.logger.Info("config written", zap.String("path", path))
			_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Replace an existing file")

	return cmd
}
