package sorts

import "cmp"

// Max returns the greatest element of s.
func Max[S ~[]E, E cmp.Ordered](s S) (E, error) {
	if err := checkSequence(s); err != nil {
		var zero E
		return zero, err
	}
	return maxElement(s, 0, len(s)-1), nil
}

// maxElement splits [left, right] at left/2 + right/2. Halving each bound
// before adding keeps the sum in range; the split always lands in
// [left, right) so both halves shrink.
func maxElement[E cmp.Ordered](s []E, left, right int) E {
	if left == right {
		return s[left]
	}
	middle := left/2 + right/2
	return max(maxElement(s, left, middle), maxElement(s, middle+1, right))
}
