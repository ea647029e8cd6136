package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dendrascience/sorts/sorts"
)

// NewFilterCmd creates and returns the filter subcommand for the sorts CLI.
// It keeps the values containing a decimal digit.
func NewFilterCmd(e *env) *cobra.Command {
	var (
		digit     int
		inputPath string
	)

	cmd := &cobra.Command{
		Use:   "filter --digit D [VALUES...]",
		Short: "Keep values whose decimal digits contain D",
		Long: `Keep the values whose decimal representation contains a digit.

The sign is ignored, relative order is preserved, and 0 is never selected.
An empty line is printed when nothing matches.`,
		Example: `  sorts filter --digit 4 -- 24 42 -4444 -4 4 -4 22 -788`,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := readInts(cmd, args, inputPath)
			if err != nil {
				return err
			}
			matched, err := sorts.FilterByDigit(values, digit)
			if err != nil {
				return err
			}
			e.logger.Debug("filtered sequence",
				zap.Int("digit", digit),
				zap.Int("count", len(values)),
				zap.Int("matched", len(matched)))
			return writeInts(cmd.OutOrStdout(), matched)
		},
	}

	cmd.Flags().IntVarP(&digit, "digit", "d", 0, "Digit to look for, 0-9 (required)")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Read values from a dataset file")

	cmd.MarkFlagRequired("digit")

	return cmd
}
