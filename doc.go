// Package main provides the sorts command-line interface.
//
// sorts runs classic array algorithms over integer sequences: quicksort and
// mergesort, an ascending-order check, a divide-and-conquer maximum, a
// decimal digit filter and a balance-index finder. It can also generate
// random, increasing and shuffled test sequences, store them as JSON or
// gzip-compressed JSON datasets, catalog and summarize them, and benchmark
// the two sort engines against each other.
//
// The main binary supports multiple subcommands:
//   - sort, ordered, max, filter, balance: run an algorithm
//   - generate, list, inspect: manage dataset files
//   - config: show or write the effective configuration
//   - bench: compare quicksort and mergesort
//   - version: print build information
package main
