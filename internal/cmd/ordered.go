package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dendrascience/sorts/sorts"
)

// NewOrderedCmd creates and returns the ordered subcommand for the sorts CLI.
func NewOrderedCmd(e *env) *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   "ordered [VALUES...]",
		Short: "Report whether a sequence is in ascending order",
		Long: `Report whether a sequence is in ascending order.

Prints true when no element is greater than its successor, false otherwise.
Equal neighbours do not break the order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := readInts(cmd, args, inputPath)
			if err != nil {
				return err
			}
			ordered, err := sorts.IsOrdered(values)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), ordered)
			return err
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Read values from a dataset file")

	return cmd
}
