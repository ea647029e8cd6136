// Package util provides utility functions for the sorts tooling.
package util

import "errors"

// Sentinel errors for package util.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Generator errors
	ErrNonPositiveCount = errors.New("element count must be greater than 0")
	ErrNegativeCount    = errors.New("element count must not be negative")
	ErrInvalidBounds    = errors.New("upper bound must be greater than lower bound")

	// File and directory errors
	ErrExpectedFile      = errors.New("expected file, got directory")
	ErrExpectedDirectory = errors.New("expected directory but got file")

	// Dataset errors
	ErrUnknownDatasetFormat = errors.New("dataset path must end in .json or .json.gz")
	ErrInvalidDatasetName   = errors.New("invalid dataset file name format")
	ErrEmptyDataset         = errors.New("dataset has no values")
	ErrHashMismatch         = errors.New("dataset values do not match the hash in its file name")
)
