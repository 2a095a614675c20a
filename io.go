package main

import (
	"io"

	"github.com/acetolang/aceto/internal/flushio"
	"github.com/acetolang/aceto/internal/stdin"
)

// LineReader implements the `r` command: read one line, without its
// trailing newline, blocking until available.
type LineReader interface {
	ReadLine() (string, error)
}

// CharReader implements the `,` command: read exactly one Unicode scalar
// value, blocking until available. True terminal raw-mode behavior (spec.md
// §6) is an external collaborator reached only through this interface — the
// core never imports a terminal package directly. The CLI's own default
// implementation (stdStreams, below) always reads a buffered rune, terminal
// or not; a caller wanting raw-mode input supplies its own CharReader.
type CharReader interface {
	ReadChar() (rune, error)
}

// Writer implements `p`/`n`/`B`'s output, plus flushing before any blocking
// read (mirroring gothird's core.go readRune, which flushes before
// reading).
type Writer interface {
	io.Writer
	Flush() error
}

// stdStreams is the LineReader/CharReader pair that WithInput installs:
// both reads share one underlying stream (stdin.Reader), as spec.md §6
// describes a single input stream. Output does not go through it;
// WithOutput installs a flushio.WriteFlusher as the VM's Writer.
type stdStreams struct {
	in  *stdin.Reader
	out flushio.WriteFlusher
}

func (s *stdStreams) ReadLine() (string, error) { return s.in.ReadLine() }
func (s *stdStreams) ReadChar() (rune, error)    { return s.in.ReadRune() }

func (s *stdStreams) Write(p []byte) (int, error) { return s.out.Write(p) }
func (s *stdStreams) Flush() error                { return s.out.Flush() }
