package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dendrascience/sorts/sorts"
)

// NewMaxCmd creates and returns the max subcommand for the sorts CLI.
func NewMaxCmd(e *env) *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "max [VALUES...]",
		Short: "Print the greatest element of a sequence",
		Long: `Print the greatest element of a sequence.

The maximum is found by recursive halving: each range is split in two and
the greater of the halves' maxima wins.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := readInts(cmd, args, inputPath)
			if err != nil {
				return err
			}
			m, err := sorts.Max(values)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), m)
			return err
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Read values from a dataset file")

	return cmd
}
