package sorts

import "cmp"

// QuickSort orders s ascending in place.
//
// Partitioning uses the Lomuto scheme with the last element of each range
// as pivot. There is no pivot randomisation, so already sorted input hits
// the quadratic worst case and recursion depth grows with len(s).
func QuickSort[S ~[]E, E cmp.Ordered](s S) error {
	if err := checkSequence(s); err != nil {
		return err
	}
	quickSort(s, 0, len(s)-1)
	return nil
}

func quickSort[E cmp.Ordered](s []E, low, high int) {
	if low >= high {
		return
	}
	p := partition(s, low, high)
	quickSort(s, low, p-1)
	quickSort(s, p+1, high)
}

// partition moves every element <= s[high] in front of it and returns the
// pivot's final index.
func partition[E cmp.Ordered](s []E, low, high int) int {
	pivot := s[high]
	i := low - 1
	for j := low; j < high; j++ {
		if s[j] <= pivot {
			i++
			s[i], s[j] = s[j], s[i]
		}
	}
	i++
	s[i], s[high] = s[high], s[i]
	return i
}
