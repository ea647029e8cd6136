package sorts

import "errors"

// Sentinel errors for package sorts.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Input errors
	ErrInvalidArgument = errors.New("invalid argument: nil sequence")
	ErrEmptyInput      = errors.New("empty input: sequence has no elements")

	// Parameter errors
	ErrOutOfRange = errors.New("parameter out of range")
)

// checkSequence reports whether s can be processed. nil and zero-length
// slices are told apart so callers can distinguish a missing sequence
// from an empty one.
func checkSequence[S ~[]E, E any](s S) error {
	if s == nil {
		return ErrInvalidArgument
	}
	if len(s) == 0 {
		return ErrEmptyInput
	}
	return nil
}
