// internal/lexicon/lexicon.go
//
// Word store for the guessing game.
// Responsibilities:
//   - Ingest a word list from a reader with strict per-line validation.
//   - Own the backing slice, growing it by doubling up to a fixed cap.
//   - Expose length and indexed access for the sorter and selector.
//   - Provide the validation predicates shared with guess handling.
//
// Constraints:
//   • A word is exactly WordLen lowercase ASCII letters (a–z).
//   • The list is bounded by MaxWords; exceeding it is a word-file error.
//   • After Sort() the list is ascending and duplicate-free; a duplicate
//     in the source list is an error, never silently collapsed.
//
// A Store is a plain value handle: callers that want several concurrent
// games each hold their own Store, or share one sorted Store read-only.

package lexicon

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	// DefaultWordLen is the letter count of a word unless overridden.
	DefaultWordLen = 5

	// DefaultMaxWords caps the word list size unless overridden.
	DefaultMaxWords = 100000

	// initialCapacity seeds the doubling growth of the backing slice.
	initialCapacity = 10
)

// ErrWordFile reports a malformed word source: a wrong-length or
// non-alphabetic line, a duplicate entry, or an over-capacity list.
// It is fatal to the caller; the list is static input, not retryable.
var ErrWordFile = errors.New("invalid word file")

// Store owns the candidate word list for one run of the game.
type Store struct {
	words    []string
	wordLen  int
	maxWords int
	sorted   bool
}

// New constructs an empty Store with the default word length and cap.
func New() *Store {
	return NewWithLimits(DefaultWordLen, DefaultMaxWords)
}

// NewWithLimits constructs an empty Store with an explicit word length
// and maximum word count. Tests use small limits to exercise the cap.
func NewWithLimits(wordLen, maxWords int) *Store {
	c := initialCapacity
	if c > maxWords {
		c = maxWords
	}
	return &Store{
		words:    make([]string, 0, c),
		wordLen:  wordLen,
		maxWords: maxWords,
	}
}

// Load opens and ingests a word-list file.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	s := New()
	if err := s.Ingest(f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Ingest appends one word per line from r.
// Every line must be exactly WordLen() lowercase letters followed by a
// bare LF; the final line may omit its trailing newline. Any malformed
// line (a CR counts as out-of-alphabet), an over-long line, or exceeding
// the word cap fails with ErrWordFile and leaves the Store unusable.
func (s *Store) Ingest(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Split(scanRawLines)
	// A well-formed line is wordLen letters plus the newline; anything
	// that cannot fit in that window is malformed.
	sc.Buffer(make([]byte, s.wordLen+2), s.wordLen+2)
	line := 0
	for sc.Scan() {
		line++
		w := sc.Text()
		if len(w) != s.wordLen {
			return fmt.Errorf("line %d: %d characters, want %d: %w", line, len(w), s.wordLen, ErrWordFile)
		}
		if !Lowercase(w) {
			return fmt.Errorf("line %d: %q: %w", line, w, ErrWordFile)
		}
		if err := s.push(w); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return fmt.Errorf("line %d: oversize line: %w", line+1, ErrWordFile)
		}
		return fmt.Errorf("read word list: %w", err)
	}
	s.sorted = false
	return nil
}

// scanRawLines splits on LF like bufio.ScanLines but keeps a trailing
// CR in the token: a carriage return is not in the alphabet and must
// reach validation instead of being silently stripped.
func scanRawLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// push appends one word, doubling the backing array when full.
// Growth is capped at maxWords; a push past the cap is a word-file error.
func (s *Store) push(w string) error {
	if len(s.words) == s.maxWords {
		return fmt.Errorf("more than %d words: %w", s.maxWords, ErrWordFile)
	}
	if len(s.words) == cap(s.words) {
		next := cap(s.words) * 2
		if next == 0 {
			next = initialCapacity
		}
		if next > s.maxWords {
			next = s.maxWords
		}
		grown := make([]string, len(s.words), next)
		copy(grown, s.words)
		s.words = grown
	}
	s.words = append(s.words, w)
	return nil
}

// Len returns the number of stored words.
func (s *Store) Len() int { return len(s.words) }

// WordLen returns the letter count every stored word has.
func (s *Store) WordLen() int { return s.wordLen }

// At returns the word at index i. i must be in [0, Len()).
func (s *Store) At(i int) string { return s.words[i] }

// ValidWord reports whether w has the store's exact word length and
// consists only of lowercase letters. Membership is Contains' job.
func (s *Store) ValidWord(w string) bool {
	return len(w) == s.wordLen && Lowercase(w)
}

// Lowercase reports whether s consists solely of ASCII a–z.
func Lowercase(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
