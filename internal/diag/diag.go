// Package diag provides an injectable diagnostic sink, used in place of the
// mutable global stdout/stderr/exit handles the original ltgen tool used
// (original_source/common.py's STDOUT/STDERR/EXIT). spec.md §9 calls for
// exactly this: "inject a diagnostic sink ... into every core call rather
// than mutating process-wide handles."
package diag

import (
	"fmt"
	"io"
	"os"
)

// Sink receives the three kinds of message the core and its drivers ever
// produce: a result meant for the user (Output), an informational note not
// part of the result (Info), and an error (Error).
type Sink interface {
	Info(msg string)
	Error(msg string)
	Output(msg string)
}

// StdSink writes Output to one writer and Info/Error to another, preserving
// the stdout/diagnostics separation spec.md §7 requires. It is the sink
// cmd/ltgen supplies.
type StdSink struct {
	Out io.Writer
	Err io.Writer
}

// NewStdSink builds a StdSink writing results to os.Stdout and diagnostics
// to os.Stderr.
func NewStdSink() *StdSink {
	return &StdSink{Out: os.Stdout, Err: os.Stderr}
}

func (s *StdSink) Info(msg string) {
	fmt.Fprintf(s.Err, "%s\n", msg)
}

func (s *StdSink) Error(msg string) {
	fmt.Fprintf(s.Err, "ERROR: %s\n", msg)
}

func (s *StdSink) Output(msg string) {
	fmt.Fprintf(s.Out, "%s\n", msg)
}

// Buffer is a Sink that accumulates every message it receives, tagged by
// kind, for display somewhere other than a process's standard streams --
// the shape the web UI's console widget needs (mirroring ui.py's MyPage,
// which redirects common.STDOUT/STDERR to its own Console.append calls).
type Buffer struct {
	Lines []Line
}

// Line is one recorded diagnostic message.
type Line struct {
	Kind string // "info", "error", or "output"
	Text string
}

func (b *Buffer) Info(msg string) {
	b.Lines = append(b.Lines, Line{Kind: "info", Text: msg})
}

func (b *Buffer) Error(msg string) {
	b.Lines = append(b.Lines, Line{Kind: "error", Text: msg})
}

func (b *Buffer) Output(msg string) {
	b.Lines = append(b.Lines, Line{Kind: "output", Text: msg})
}

// String joins every recorded line, in order, one per line.
func (b *Buffer) String() string {
	s := ""
	for i, l := range b.Lines {
		if i > 0 {
			s += "\n"
		}
		s += l.Text
	}
	return s
}
