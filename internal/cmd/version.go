package cmd

import (
	"github.com/spf13/cobra"

	"github.com/dendrascience/sorts/version"
)

// NewVersionCmd creates and returns the version subcommand for the sorts CLI.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			version.PrintVersion(cmd.OutOrStdout(), "sorts")
		},
	}
}
