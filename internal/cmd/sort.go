package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dendrascience/sorts/sorts"
	"github.com/dendrascience/sorts/util"
)

// NewSortCmd creates and returns the sort subcommand for the sorts CLI.
// It orders a sequence with the configured or requested engine.
func NewSortCmd(e *env) *cobra.Command {
	var (
		algorithm  string
		inputPath  string
		outputPath string
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "sort [VALUES...]",
		Short: "Sort a sequence ascending",
		Long: `Sort a sequence of integers in ascending order.

The engine is quicksort (Lomuto partitioning, last-element pivot) or
mergesort (top-down, auxiliary buffer). Without --algorithm the engine from
the config file is used. Values come from the arguments, from --input, or
from stdin. The sorted sequence is printed and optionally saved with
--output as a dataset file (.json or .json.gz).`,
		Example: `  sorts sort 5 3 9 1
  sorts sort --algorithm merge -- -4 12 0
  sorts sort --input data.json --output sorted.json.gz --quiet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("algorithm") {
				algorithm = e.cfg.Algorithm
			}
			alg, err := sorts.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}
			values, err := readInts(cmd, args, inputPath)
			if err != nil {
				return err
			}

			start := time.Now()
			if err := sorts.Sort(alg, values); err != nil {
				return err
			}
			e.logger.Debug("sorted sequence",
				zap.Stringer("algorithm", alg),
				zap.Int("count", len(values)),
				zap.Duration("elapsed", time.Since(start)))

			if outputPath != "" {
				d := util.NewDataset(util.KindSorted, values)
				if err := d.Save(outputPath); err != nil {
					return fmt.Errorf("saving sorted dataset: %w", err)
				}
				e.logger.Info("dataset written", zap.String("path", outputPath), zap.String("id", d.ID))
			}
			if quiet {
				return nil
			}
			return writeInts(cmd.OutOrStdout(), values)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "quick", "Sort engine: quick or merge")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Read values from a dataset file")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Save the sorted values as a dataset file")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not print the sorted values")

	return cmd
}
