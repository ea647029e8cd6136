package sorts

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point element type.
type Number interface {
	constraints.Integer | constraints.Float
}

// FindBalanceIndex returns the first index i for which the sum of s[:i]
// and the sum of s[i+1:] differ by less than tolerance. Candidates run
// from 1 to len(s)-2; the first and last index have nothing on one side
// and are never returned. ok is false when no index qualifies.
//
// A difference exactly equal to tolerance does not qualify. tolerance must
// lie strictly between 0 and 1.
//
// Sums are kept in float64 for every element type, so integer inputs whose
// running sums exceed 2^53 in magnitude are compared with rounding error.
func FindBalanceIndex[S ~[]E, E Number](s S, tolerance float64) (index int, ok bool, err error) {
	if !(tolerance > 0 && tolerance < 1) {
		return -1, false, fmt.Errorf("%w: tolerance %v not in (0, 1)", ErrOutOfRange, tolerance)
	}
	if err := checkSequence(s); err != nil {
		return -1, false, err
	}
	if len(s) < 3 {
		return -1, false, nil
	}

	left := float64(s[0])
	var right float64
	for _, v := range s[2:] {
		right += float64(v)
	}
	for i := 1; i < len(s)-1; i++ {
		if math.Abs(left-right) < tolerance {
			return i, true, nil
		}
		left += float64(s[i])
		right -= float64(s[i+1])
	}
	return -1, false, nil
}
