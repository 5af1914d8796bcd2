// Package sorter provides the comparison sorts used to order the input columns.
package sorter

import (
	"cmp"
	"slices"
)

// Func sorts a slice of integers in place.
type Func func([]int)

// MergeSort sorts s in place. Equal elements keep their relative order.
func MergeSort[S ~[]E, E cmp.Ordered](s S) {
	if len(s) < 2 {
		return
	}
	MergeSortRange(s, 0, len(s)-1)
}

// MergeSortRange sorts the inclusive index range [left, right] of s.
// It panics if the range falls outside s.
func MergeSortRange[S ~[]E, E cmp.Ordered](s S, left, right int) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2
	MergeSortRange(s, left, mid)
	MergeSortRange(s, mid+1, right)
	merge(s, left, mid, right)
}

// merge combines the sorted runs s[left..mid] and s[mid+1..right].
// Ties take the left element.
func merge[S ~[]E, E cmp.Ordered](s S, left, mid, right int) {
	l := slices.Clone(s[left : mid+1])
	r := slices.Clone(s[mid+1 : right+1])

	i, j, k := 0, 0, left
	for i < len(l) && j < len(r) {
		if l[i] <= r[j] {
			s[k] = l[i]
			i++
		} else {
			s[k] = r[j]
			j++
		}
		k++
	}
	k += copy(s[k:], l[i:])
	copy(s[k:], r[j:])
}

// Std sorts with the standard library's pattern-defeating quicksort.
func Std(s []int) {
	slices.Sort(s)
}

// IsSorted reports whether s is in non-decreasing order.
func IsSorted[S ~[]E, E cmp.Ordered](s S) bool {
	return slices.IsSorted(s)
}
