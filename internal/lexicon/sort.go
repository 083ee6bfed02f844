// internal/lexicon/sort.go
//
// Batch ordering of the word list: recursive merge sort followed by an
// adjacent-pair duplicate scan. Run once after ingestion, before any
// Contains call. A duplicate pair in the source list is corrupt input
// and fails with ErrWordFile.

package lexicon

import "fmt"

// Sort orders the word list ascending by byte-wise comparison and then
// rejects the list if any word appears twice.
func (s *Store) Sort() error {
	mergeSort(s.words)
	for i := 0; i+1 < len(s.words); i++ {
		if s.words[i] == s.words[i+1] {
			return fmt.Errorf("duplicate word %q: %w", s.words[i], ErrWordFile)
		}
	}
	s.sorted = true
	return nil
}

// Sorted reports whether Sort has completed since the last ingestion.
func (s *Store) Sorted() bool { return s.sorted }

// mergeSort sorts list in place. Recursion depth is log2(n), at most
// ~17 levels for a full store, so stack use is not a concern.
func mergeSort(list []string) {
	if len(list) <= 1 {
		return
	}
	mid := len(list) / 2
	left := append([]string(nil), list[:mid]...)
	right := append([]string(nil), list[mid:]...)
	mergeSort(left)
	mergeSort(right)
	merge(left, right, list)
}

// merge interleaves two sorted halves back into list, taking the
// smaller head each step. Ties take from the left half.
func merge(left, right, list []string) {
	li, ri := 0, 0
	for li+ri < len(list) {
		if ri == len(right) || (li < len(left) && left[li] <= right[ri]) {
			list[li+ri] = left[li]
			li++
		} else {
			list[li+ri] = right[ri]
			ri++
		}
	}
}
