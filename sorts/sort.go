package sorts

import (
	"cmp"
	"fmt"
	"strings"
)

// Algorithm names one of the interchangeable sort engines.
type Algorithm string

const (
	AlgorithmQuick Algorithm = "quick"
	AlgorithmMerge Algorithm = "merge"
)

// Algorithms lists every engine in a stable order.
var Algorithms = []Algorithm{AlgorithmQuick, AlgorithmMerge}

func (a Algorithm) String() string {
	return string(a)
}

// ParseAlgorithm maps a case-insensitive engine name to an Algorithm.
// "quicksort" and "mergesort" are accepted as aliases.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "quick", "quicksort":
		return AlgorithmQuick, nil
	case "merge", "mergesort":
		return AlgorithmMerge, nil
	}
	return "", fmt.Errorf("%w: unknown algorithm %q", ErrOutOfRange, name)
}

// Sort orders s ascending in place with the given engine.
func Sort[S ~[]E, E cmp.Ordered](alg Algorithm, s S) error {
	switch alg {
	case AlgorithmQuick:
		return QuickSort(s)
	case AlgorithmMerge:
		return MergeSort(s)
	}
	return fmt.Errorf("%w: unknown algorithm %q", ErrOutOfRange, string(alg))
}
