package render

import (
	"fmt"

	"github.com/hcasse/ltgen/internal/diag"
	"github.com/hcasse/ltgen/internal/grammar"
	"github.com/hcasse/ltgen/internal/ll"
)

// DisplayObserver prints the recognizer's step log, one line per Step,
// following original_source/ll.py's DisplayObserver: each printed row shows
// the stack/buffer as they were *before* a step, alongside the action that
// step produced, padded into three columns whose width is derived from the
// initial buffer length (spec.md §6). This is streamed one line at a time
// as steps happen, unlike Table's all-at-once grid, so it is built with
// plain fmt padding rather than rosed's table inserter.
type DisplayObserver struct {
	Sink diag.Sink

	width              int
	prevStack, prevBuf grammar.Word
}

// NewDisplayObserver returns a DisplayObserver writing to sink.
func NewDisplayObserver(sink diag.Sink) *DisplayObserver {
	return &DisplayObserver{Sink: sink}
}

func (d *DisplayObserver) OnStart(p *ll.Parser) {
	d.width = p.Buffer.Len()*2 - 1
	if d.width < 5 {
		d.width = 5
	}
	d.prevStack = p.Stack
	d.prevBuf = p.Buffer

	d.Sink.Output(d.row("Stack", "Word", "Action"))
	d.Sink.Output(fmt.Sprintf("%s %s %s", dashes(d.width), dashes(d.width), dashes(12)))
}

func (d *DisplayObserver) OnNext(p *ll.Parser) {
	d.Sink.Output(d.row(d.prevStack.String(), d.prevBuf.String(), p.Action.String()))
	d.prevStack = p.Stack
	d.prevBuf = p.Buffer
}

func (d *DisplayObserver) row(stack, word, action string) string {
	return fmt.Sprintf("%-*s %-*s %-*s", d.width, stack, d.width, word, d.width, action)
}

func dashes(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '-'
	}
	return string(b)
}
