package util

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Bounds used by RandomArray.
const (
	DefaultLowerBound = -10000
	DefaultUpperBound = 10000
)

// NewRand returns a PCG-backed generator. A non-zero seed yields a
// reproducible stream; zero seeds from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomSequence returns n uniformly distributed values in [lower, upper).
// Any pair of bounds with lower < upper is accepted, including the full
// range of int.
func RandomSequence(r *rand.Rand, n, lower, upper int) ([]int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrNonPositiveCount, n)
	}
	if upper <= lower {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrInvalidBounds, lower, upper)
	}
	// upper-lower can overflow int; the unsigned difference cannot.
	width := uint64(upper) - uint64(lower)
	values := make([]int, n)
	for i := range values {
		values[i] = int(uint64(lower) + r.Uint64N(width))
	}
	return values, nil
}

// RandomArray returns n values in [DefaultLowerBound, DefaultUpperBound).
// Unlike RandomSequence it accepts n == 0 and returns an empty slice.
func RandomArray(r *rand.Rand, n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	if n == 0 {
		return []int{}, nil
	}
	return RandomSequence(r, n, DefaultLowerBound, DefaultUpperBound)
}

// IncreasingSequence returns 0, 1, ..., n-1.
func IncreasingSequence(n int) ([]int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrNonPositiveCount, n)
	}
	values := make([]int, n)
	for i := range values {
		values[i] = i
	}
	return values, nil
}

// Shake scrambles s in place by swapping every position with a position
// drawn from the whole slice. Self-swaps are allowed and the resulting
// permutation is not guaranteed to be uniform; use rand.Shuffle when that
// matters.
func Shake[S ~[]E, E any](r *rand.Rand, s S) {
	for i := range s {
		j := r.IntN(len(s))
		s[i], s[j] = s[j], s[i]
	}
}
