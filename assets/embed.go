// assets/embed.go
//
// Embedded default word list, used when no word-list file is supplied
// on the command line. The list obeys the same rules as an external
// file: one five-letter lowercase word per line, no duplicates.

package assets

import (
	"bytes"
	_ "embed"
	"io"
)

//go:embed words.txt
var words []byte

// Words returns a reader over the embedded default word list.
func Words() io.Reader {
	return bytes.NewReader(words)
}
