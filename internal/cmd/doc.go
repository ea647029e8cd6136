// Package cmd provides the command-line interface implementation for sorts.
//
// This package contains all the subcommand implementations for the sorts CLI
// tool. It uses the Cobra library for command structure; the root main
// package runs it through Fang for styled help and errors.
//
// The package is organized into the following commands:
//   - root: Main command coordinator, config and logger setup
//   - sort, ordered, max, filter, balance: the array algorithms
//   - generate: random, increasing and shuffled dataset generation
//   - list, inspect: dataset catalog and summaries
//   - bench: quicksort versus mergesort timing
//   - config: show or write the effective configuration
//   - version: build information
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. Values are read from positional
// arguments, a dataset file given with --input, or stdin. Negative values
// must follow "--" so they are not parsed as flags.
package cmd
