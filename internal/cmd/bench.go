package cmd

import (
	"context"
	"fmt"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dendrascience/sorts/sorts"
	"github.com/dendrascience/sorts/util"
)

// benchResult holds the trial durations of one engine.
type benchResult struct {
	Algorithm sorts.Algorithm
	Trials    []time.Duration
}

func (r benchResult) min() time.Duration { return slices.Min(r.Trials) }
func (r benchResult) max() time.Duration { return slices.Max(r.Trials) }

func (r benchResult) mean() time.Duration {
	var total time.Duration
	for _, d := range r.Trials {
		total += d
	}
	return total / time.Duration(len(r.Trials))
}

// NewBenchCmd creates and returns the bench subcommand for the sorts CLI.
// It times both sort engines on identical random input.
func NewBenchCmd(e *env) *cobra.Command {
	var (
		runs     int
		count    int
		parallel int
		seed     uint64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare quicksort and mergesort timings",
		Long: `Time quicksort and mergesort on the same random sequences.

Each of --runs rounds generates --count random values; every engine sorts
its own copy and the result is verified to be ordered. Up to --parallel
trials run at once. Minimum, mean and maximum times are reported per
engine.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			bc := e.cfg.Bench
			if !cmd.Flags().Changed("runs") {
				runs = bc.Runs
			}
			if !cmd.Flags().Changed("count") {
				count = bc.Count
			}
			if !cmd.Flags().Changed("parallel") {
				parallel = bc.Parallel
			}
			if !cmd.Flags().Changed("seed") {
				seed = e.cfg.Generator.Seed
			}
			if runs <= 0 || parallel <= 0 {
				return fmt.Errorf("runs and parallel must be positive, got %d and %d", runs, parallel)
			}

			inputs := make([][]int, runs)
			r := util.NewRand(seed)
			for i := range inputs {
				values, err := util.RandomSequence(r, count, e.cfg.Generator.Min, e.cfg.Generator.Max)
				if err != nil {
					return err
				}
				inputs[i] = values
			}

			results, err := runBench(cmd.Context(), e.logger, sorts.Algorithms, inputs, parallel)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "ALGORITHM\tRUNS\tCOUNT\tMIN\tMEAN\tMAX\n")
			for _, res := range results {
				fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%s\n",
					res.Algorithm, len(res.Trials), count, res.min(), res.mean(), res.max())
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVarP(&runs, "runs", "r", 5, "Number of rounds")
	cmd.Flags().IntVarP(&count, "count", "c", 100000, "Values per round")
	cmd.Flags().IntVarP(&parallel, "parallel", "j", 2, "Trials to run concurrently")
	cmd.Flags().Uint64VarP(&seed, "seed", "s", 0, "Random seed; 0 seeds from the clock")

	return cmd
}

// runBench sorts a private copy of every input with every algorithm. Each
// trial writes only its own slot of the result, so no locking is needed.
func runBench(ctx context.Context, logger *zap.Logger, algs []sorts.Algorithm, inputs [][]int, parallel int) ([]benchResult, error) {
	results := make([]benchResult, len(algs))
	for i, alg := range algs {
		results[i] = benchResult{Algorithm: alg, Trials: make([]time.Duration, len(inputs))}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for ai, alg := range algs {
		for run, input := range inputs {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				values := slices.Clone(input)
				start := time.Now()
				if err := sorts.Sort(alg, values); err != nil {
					return fmt.Errorf("%s run %d: %w", alg, run, err)
				}
				elapsed := time.Since(start)

				ordered, err := sorts.IsOrdered(values)
				if err != nil {
					return err
				}
				if !ordered {
					return fmt.Errorf("%s run %d: result not ordered", alg, run)
				}
				results[ai].Trials[run] = elapsed
				logger.Debug("bench trial",
					zap.Stringer("algorithm", alg),
					zap.Int("run", run),
					zap.Int("count", len(values)),
					zap.Duration("elapsed", elapsed))
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
