package lexicon

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngest(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		wantLen int
	}{
		{"simple list", "apple\nbread\ncrane\n", false, 3},
		{"final line without newline", "apple\nbread\ncrane", false, 3},
		{"single word", "apple", false, 1},
		{"short word", "apple\ncat\n", true, 0},
		{"long word", "apple\nbreads\n", true, 0},
		{"uppercase letter", "Apple\n", true, 0},
		{"digit", "app1e\n", true, 0},
		{"punctuation", "app!e\n", true, 0},
		{"embedded space", "ap le\n", true, 0},
		{"empty line", "apple\n\nbread\n", true, 0},
		// CR is out-of-alphabet: CRLF files are rejected, not tolerated.
		{"crlf terminators", "apple\r\nbread\r\n", true, 0},
		{"crlf on one line", "apple\nbread\r\ncrane\n", true, 0},
		{"trailing cr without newline", "apple\r", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			err := s.Ingest(strings.NewReader(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrWordFile)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, s.Len())
		})
	}
}

func TestIngestCapacity(t *testing.T) {
	// Exactly at the cap succeeds.
	s := NewWithLimits(5, 3)
	require.NoError(t, s.Ingest(strings.NewReader("apple\nbread\ncrane")))
	assert.Equal(t, 3, s.Len())

	// One more word is a word-file error.
	s = NewWithLimits(5, 3)
	err := s.Ingest(strings.NewReader("apple\nbread\ncrane\ndrain"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWordFile)
}

func TestIngestGrowsPastInitialCapacity(t *testing.T) {
	var b strings.Builder
	n := initialCapacity*2 + 5
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "aa%c%c%c\n", 'a'+i/26, 'a'+i%26, 'z')
	}
	s := New()
	require.NoError(t, s.Ingest(strings.NewReader(b.String())))
	assert.Equal(t, n, s.Len())
	assert.Equal(t, "aaaaz", s.At(0))
}

func TestIngestOversizeLine(t *testing.T) {
	// A line far past the word length is still a word-file error, not a
	// bare scanner error.
	s := New()
	err := s.Ingest(strings.NewReader("apple\n" + strings.Repeat("a", 64) + "\nbread\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWordFile)
}

func TestValidWord(t *testing.T) {
	s := New()

	// Membership is not Validation's job: any exact-length lowercase
	// string passes, even with an empty store.
	assert.True(t, s.ValidWord("crane"))
	assert.True(t, s.ValidWord("zzzzz"))

	assert.False(t, s.ValidWord("cat"))
	assert.False(t, s.ValidWord("cranes"))
	assert.False(t, s.ValidWord("cat3!"))
	assert.False(t, s.ValidWord("CRANE"))
	assert.False(t, s.ValidWord(""))
}

func TestLowercase(t *testing.T) {
	assert.True(t, Lowercase("abz"))
	assert.True(t, Lowercase(""))
	assert.False(t, Lowercase("abZ"))
	assert.False(t, Lowercase("ab1"))
	assert.False(t, Lowercase("ab "))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("no/such/wordlist.txt")
	require.Error(t, err)
}
