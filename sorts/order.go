package sorts

import "cmp"

// IsOrdered reports whether s is in ascending order. Equal neighbours do
// not break the order.
func IsOrdered[S ~[]E, E cmp.Ordered](s S) (bool, error) {
	if err := checkSequence(s); err != nil {
		return false, err
	}
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false, nil
		}
	}
	return true, nil
}
