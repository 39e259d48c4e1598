package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/hcasse/ltgen/internal/diag"
	"github.com/hcasse/ltgen/internal/grammar"
	"github.com/hcasse/ltgen/internal/ll"
	"github.com/hcasse/ltgen/internal/render"
	"github.com/hcasse/ltgen/internal/tree"
)

// runRepl reads words one per line from an interactive prompt and runs each
// against table, printing its step log the same way --words does. It reads
// until EOF (Ctrl-D) or interrupt (Ctrl-C), grounded on cmd/tqi's
// readline-based interactive command loop.
func runRepl(table *ll.Table, opts options, sink diag.Sink) {
	rl, err := readline.New("word> ")
	if err != nil {
		sink.Error(fmt.Sprintf("repl: %s", err.Error()))
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt || err == io.EOF {
				return
			}
			sink.Error(fmt.Sprintf("repl: %s", err.Error()))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		syms := make([]grammar.Symbol, len(fields))
		for i, f := range fields {
			syms[i] = grammar.Symbol(f)
		}
		w := grammar.NewWord(syms...)

		display := render.NewDisplayObserver(sink)
		observers := []ll.Observer{display}

		var treeObs *tree.Observer
		if opts.tree || opts.dot {
			treeObs = tree.NewObserver()
			observers = append(observers, treeObs)
		}

		p := ll.NewParser(table, w, observers...)
		action := p.Run()

		if treeObs != nil && action.Kind == ll.ActionAccept {
			if opts.dot {
				sink.Output(render.TreeDot(treeObs.Root))
			} else {
				sink.Output(render.TreeIndented(treeObs.Root))
			}
		}
	}
}
