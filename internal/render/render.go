// internal/render/render.go
//
// Terminal presentation of guess feedback: exact letters in green,
// elsewhere letters in yellow, absent letters in the default color.
// Color is dropped automatically when stdout is not a terminal.

package render

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mitchellh/colorstring"

	"github.com/lexiconlab/wordle-cli/internal/game"
)

// Printer renders colored rows. Construct with New for TTY detection,
// or set Colorize directly in tests.
type Printer struct {
	c colorstring.Colorize
}

// New constructs a Printer that colors output only when stdout is a TTY.
func New() *Printer {
	return &Printer{c: colorstring.Colorize{
		Colors:  colorstring.DefaultColors,
		Disable: !isatty.IsTerminal(os.Stdout.Fd()),
		Reset:   true,
	}}
}

// NewPlain constructs a Printer that never emits color codes.
func NewPlain() *Printer {
	return &Printer{c: colorstring.Colorize{
		Colors:  colorstring.DefaultColors,
		Disable: true,
		Reset:   true,
	}}
}

// Row renders one guess with its per-letter marks.
// guess and marks must have equal length.
func (p *Printer) Row(guess string, marks []game.Mark) string {
	var b strings.Builder
	for i, m := range marks {
		switch m {
		case game.MarkExact:
			b.WriteString("[green]")
		case game.MarkElsewhere:
			b.WriteString("[yellow]")
		default:
			b.WriteString("[reset]")
		}
		b.WriteByte(guess[i])
	}
	return p.c.Color(b.String())
}
