// Package stdin implements the program's two modes of reading input: a
// line at a time (for the `r` command) and a single Unicode scalar value at
// a time (for the `,` command), while tracking enough location state for
// -trace diagnostics.
package stdin

import (
	"bytes"
	"fmt"
	"io"

	"github.com/acetolang/aceto/internal/runeio"
)

// Location names a position within the input stream, for trace output.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Reader wraps a single io.Reader with rune-at-a-time and line-at-a-time
// reads, tracking the most recently completed line for diagnostics.
type Reader struct {
	rr   runeio.Reader
	name string

	lastLine Location
	lastText bytes.Buffer

	scanLine Location
	scanText bytes.Buffer
}

// NewReader wraps r, naming it name for diagnostics (e.g. "<stdin>").
func NewReader(r io.Reader, name string) *Reader {
	return &Reader{rr: runeio.NewReader(r), name: name, scanLine: Location{Name: name, Line: 1}}
}

// ReadRune reads one Unicode scalar value, satisfying the `,` command.
func (in *Reader) ReadRune() (rune, error) {
	r, _, err := in.rr.ReadRune()
	if r == '\n' {
		in.nextLine()
	} else if r != 0 {
		in.scanText.WriteRune(r)
	}
	return r, err
}

// ReadLine reads a line without its trailing newline, satisfying the `r`
// command. Returns io.EOF only if no bytes at all were read.
func (in *Reader) ReadLine() (string, error) {
	var sb bytes.Buffer
	any := false
	for {
		r, _, err := in.rr.ReadRune()
		if r == '\n' {
			in.nextLine()
			return sb.String(), nil
		}
		if r != 0 {
			any = true
			sb.WriteRune(r)
			in.scanText.WriteRune(r)
		}
		if err != nil {
			if err == io.EOF && any {
				return sb.String(), nil
			}
			return sb.String(), err
		}
	}
}

func (in *Reader) nextLine() {
	in.lastLine = in.scanLine
	in.lastText.Reset()
	in.lastText.Write(in.scanText.Bytes())
	in.scanText.Reset()
	in.scanLine.Line++
}

// LastLine returns the location and text of the line in progress if any of
// it has been read, else of the most recently completed line, for
// trace/error diagnostics.
func (in *Reader) LastLine() (Location, string) {
	if in.scanText.Len() > 0 {
		return in.scanLine, in.scanText.String()
	}
	return in.lastLine, in.lastText.String()
}
