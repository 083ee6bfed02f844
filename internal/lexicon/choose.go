// internal/lexicon/choose.go
//
// Deterministic target selection. The index formula deliberately avoids
// plain seed mod n, which would make adjacent seeds (e.g. consecutive
// clock values) pick adjacent words in the sorted list.

package lexicon

import "errors"

// multiplier is a large odd constant that spreads consecutive seeds
// across the index space.
const multiplier = 4611686018453

// ErrEmptyStore reports a Choose call against a store with no words.
var ErrEmptyStore = errors.New("lexicon: empty store")

// Choose picks one word from the store for a non-negative seed.
// The same (store, seed) pair always yields the same word, which keeps
// games reproducible when a seed is supplied externally.
func (s *Store) Choose(seed int64) (string, error) {
	if len(s.words) == 0 {
		return "", ErrEmptyStore
	}
	// uint64 arithmetic so the multiply wraps instead of overflowing.
	n := uint64(len(s.words))
	idx := (uint64(seed) % n) * multiplier % n
	return s.words[idx], nil
}
