package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dendrascience/sorts/util"
)

// NewGenerateCmd creates and returns the generate subcommand for the sorts CLI.
// It produces random, increasing or shuffled sequences for testing.
func NewGenerateCmd(e *env) *cobra.Command {
	var (
		kind       string
		outputPath string
		count      int
		lower      int
		upper      int
		seed       uint64
		compressed bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a test sequence",
		Long: `Generate a sequence of integers for testing the algorithms.

Kinds:
  random      uniformly random values in [--min, --max)
  increasing  0, 1, ..., count-1
  shuffled    an increasing sequence scrambled by repeated random swaps

Without --output the values are printed. When --output is an existing
directory, or ends in a path separator, the dataset is stored under a
content-addressed name (<bucket>-<sha256>.json); otherwise it is written to
the given file. --gzip compresses datasets stored in a directory.`,
		Example: `  sorts generate --kind random --count 10 --seed 42
  sorts generate --kind shuffled --count 100000 --output data/ --gzip`,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen := e.cfg.Generator
			if !cmd.Flags().Changed("count") {
				count = gen.Count
			}
			if !cmd.Flags().Changed("min") {
				lower = gen.Min
			}
			if !cmd.Flags().Changed("max") {
				upper = gen.Max
			}
			if !cmd.Flags().Changed("seed") {
				seed = gen.Seed
			}

			values, err := generate(kind, count, lower, upper, seed)
			if err != nil {
				return err
			}
			e.logger.Debug("generated sequence",
				zap.String("kind", kind),
				zap.Int("count", count),
				zap.Uint64("seed", seed))

			if outputPath == "" {
				return writeInts(cmd.OutOrStdout(), values)
			}

			d := util.NewDataset(kind, values)
			path, err := datasetPath(outputPath, d, compressed)
			if err != nil {
				return err
			}
			if err := d.Save(path); err != nil {
				return err
			}
			e.logger.Info("dataset written",
				zap.String("path", path),
				zap.String("id", d.ID),
				zap.Int("count", d.Len()))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", util.KindRandom, "Sequence kind: random, increasing or shuffled")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Dataset file or directory to write")
	cmd.Flags().IntVarP(&count, "count", "c", 1000, "Number of values to generate")
	cmd.Flags().IntVar(&lower, "min", -10000, "Lower bound for random values (inclusive)")
	cmd.Flags().IntVar(&upper, "max", 10000, "Upper bound for random values (exclusive)")
	cmd.Flags().Uint64VarP(&seed, "seed", "s", 0, "Random seed; 0 seeds from the clock")
	cmd.Flags().BoolVarP(&compressed, "gzip", "z", false, "Gzip datasets written into a directory")

	return cmd
}

func generate(kind string, count, lower, upper int, seed uint64) ([]int, error) {
	switch kind {
	case util.KindRandom:
		return util.RandomSequence(util.NewRand(seed), count, lower, upper)
	case util.KindIncreasing:
		return util.IncreasingSequence(count)
	case util.KindShuffled:
		values, err := util.IncreasingSequence(count)
		if err != nil {
			return nil, err
		}
		util.Shake(util.NewRand(seed), values)
		return values, nil
	}
	return nil, fmt.Errorf("unknown sequence kind %q (valid: %s, %s, %s)",
		kind, util.KindRandom, util.KindIncreasing, util.KindShuffled)
}

// datasetPath resolves --output to a file path, creating the directory
// for content-addressed output.
func datasetPath(output string, d util.Dataset, compressed bool) (string, error) {
	info, err := os.Stat(output)
	isDir := err == nil && info.IsDir()
	if !isDir && !strings.HasSuffix(output, string(os.PathSeparator)) {
		if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
		return output, nil
	}
	if err := os.MkdirAll(output, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	return filepath.Join(output, util.DatasetFileName(d, compressed)), nil
}
