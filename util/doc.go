// Package util provides the data plumbing around the sorts algorithms.
//
// This package contains everything the CLI needs besides the algorithms
// themselves: producing input sequences, persisting them, and finding them
// again on disk.
//
// Key Components:
//
// Generation:
//   - RandomSequence and RandomArray for uniformly random integers
//   - IncreasingSequence for strictly increasing 0..n-1 input
//   - Shake, a repeated random-swap scrambler (not a uniform shuffle)
//   - NewRand for seeded, reproducible generators
//
// Datasets:
//   - Dataset type with UUID identity, kind and creation time
//   - JSON (.json) and gzip-compressed JSON (.json.gz) persistence
//   - SHA-256 content addressing with colorhash buckets for file names
//
// Catalogs and Summaries:
//   - ScanCatalog walks a directory of datasets and orders them by age
//   - Summarize reports count, bounds and order of a dataset
package util
