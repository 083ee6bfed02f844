// internal/lexicon/search.go
//
// Membership lookup over the sorted word list. Plain recursive binary
// search; the caller owns the precondition that Sort has run.

package lexicon

// Contains reports whether word is in the store.
// Requires a sorted store; an empty store contains nothing.
func (s *Store) Contains(word string) bool {
	return search(s.words, word, 0, len(s.words)-1)
}

func search(words []string, word string, low, high int) bool {
	if low > high {
		return false
	}
	mid := (low + high) / 2
	switch {
	case words[mid] == word:
		return true
	case words[mid] > word:
		return search(words, word, low, mid-1)
	default:
		return search(words, word, mid+1, high)
	}
}
