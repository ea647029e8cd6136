// Package sorts provides classic algorithms over in-memory slices.
//
// The package contains the building blocks used by the sorts CLI and by
// anything that needs a small, predictable reference implementation of
// textbook array routines. Every function is synchronous, keeps no state
// between calls and never retains the caller's slice.
//
// Key Components:
//
// Sort Engine:
//   - QuickSort: in-place Lomuto partitioning with the last element as pivot
//   - MergeSort: top-down recursive merge with an auxiliary buffer
//   - Sort and ParseAlgorithm: select an engine by name ("quick", "merge")
//
// Scanning:
//   - IsOrdered: single forward scan for ascending order
//   - Max: divide-and-conquer maximum
//   - FilterByDigit: elements whose decimal digits contain a target digit
//   - FindBalanceIndex: index whose left and right sums agree within a tolerance
//
// Input validation follows one rule for every operation: a nil slice
// reports ErrInvalidArgument, a zero-length slice reports ErrEmptyInput,
// and a parameter outside its domain reports ErrOutOfRange. Parameters are
// checked before the slice.
package sorts
