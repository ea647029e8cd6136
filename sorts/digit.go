package sorts

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// FilterByDigit returns the elements of s whose decimal representation,
// ignoring sign, contains digit. Relative order is preserved and the result
// is a new slice; it is empty, never nil, when nothing matches.
//
// Zero has no digits under this scan and is never selected, not even for
// digit 0.
func FilterByDigit[S ~[]E, E constraints.Integer](s S, digit int) (S, error) {
	if digit < 0 || digit > 9 {
		return nil, fmt.Errorf("%w: digit %d not in [0, 9]", ErrOutOfRange, digit)
	}
	if err := checkSequence(s); err != nil {
		return nil, err
	}
	out := make(S, 0, len(s))
	for _, v := range s {
		if containsDigit(v, digit) {
			out = append(out, v)
		}
	}
	return out, nil
}

// containsDigit works on the remainders rather than on |v| so the most
// negative value of a signed type needs no special case.
func containsDigit[E constraints.Integer](v E, digit int) bool {
	for v != 0 {
		d := v % 10
		if d < 0 {
			d = -d
		}
		if int(d) == digit {
			return true
		}
		v /= 10
	}
	return false
}
