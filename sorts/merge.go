package sorts

import "cmp"

// MergeSort orders s ascending in place.
//
// The range is split at its midpoint, both halves are sorted recursively
// and then merged through an auxiliary buffer. One buffer of len(s) is
// allocated per call and each merge step uses the prefix that matches its
// range.
func MergeSort[S ~[]E, E cmp.Ordered](s S) error {
	if err := checkSequence(s); err != nil {
		return err
	}
	buf := make([]E, len(s))
	mergeSort(s, buf, 0, len(s)-1)
	return nil
}

func mergeSort[E cmp.Ordered](s, buf []E, low, high int) {
	if low >= high {
		return
	}
	middle := int(uint(low+high) >> 1)
	mergeSort(s, buf, low, middle)
	mergeSort(s, buf, middle+1, high)
	merge(s, buf[:high-low+1], low, middle, high)
}

// merge combines the sorted runs s[low:middle+1] and s[middle+1:high+1].
// On equal fronts the right element is taken first.
func merge[E cmp.Ordered](s, tmp []E, low, middle, high int) {
	left, right, k := low, middle+1, 0
	for left <= middle && right <= high {
		if s[left] < s[right] {
			tmp[k] = s[left]
			left++
		} else {
			tmp[k] = s[right]
			right++
		}
		k++
	}
	k += copy(tmp[k:], s[left:middle+1])
	copy(tmp[k:], s[right:high+1])
	copy(s[low:high+1], tmp)
}
