package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dendrascience/sorts/sorts"
)

// NewBalanceCmd creates and returns the balance subcommand for the sorts CLI.
func NewBalanceCmd(e *env) *cobra.Command {
	var (
		tolerance float64
		inputPath string
	)

	cmd := &cobra.Command{
		Use:   "balance --tolerance T [VALUES...]",
		Short: "Find the index where left and right sums balance",
		Long: `Find the first index whose left-side sum and right-side sum differ by
less than the tolerance. The element at the index belongs to neither side,
and the first and last index are never reported.

Values may be decimal. The tolerance must lie strictly between 0 and 1.`,
		Example: `  sorts balance --tolerance 0.01 0.3 0.3 2 0.2 0.2 0.2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := readFloats(cmd, args, inputPath)
			if err != nil {
				return err
			}
			index, ok, err := sorts.FindBalanceIndex(values, tolerance)
			if err != nil {
				return err
			}
			if !ok {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "no balance index")
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), index)
			return err
		},
	}

	cmd.Flags().Float64VarP(&tolerance, "tolerance", "t", 0.01, "Allowed difference between the sums, in (0, 1)")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Read values from a dataset file")

	return cmd
}
