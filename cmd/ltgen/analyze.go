package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hcasse/ltgen/internal/diag"
	"github.com/hcasse/ltgen/internal/grammar"
	"github.com/hcasse/ltgen/internal/ll"
	"github.com/hcasse/ltgen/internal/ltgcache"
	"github.com/hcasse/ltgen/internal/render"
	"github.com/hcasse/ltgen/internal/tree"
)

// run executes one ltgen invocation against already-parsed options and
// returns the process exit code, following spec.md §6/§7's exit-code
// contract. It never calls os.Exit itself so it can be driven from tests.
func run(opts options, sink diag.Sink) int {
	text, err := os.ReadFile(opts.grammarPath)
	if err != nil {
		sink.Error(fmt.Sprintf("%s: %s", opts.grammarPath, err.Error()))
		return ExitUsageOrGrammarError
	}

	g, parseErrs, fatal := grammar.ParseText(opts.grammarPath, string(text))
	for _, pe := range parseErrs {
		sink.Error(pe.Error())
	}
	if fatal != nil {
		sink.Error(fatal.Error())
		return ExitUsageOrGrammarError
	}

	names := opts.names
	if len(names) == 0 {
		names = symbolsToStrings(g.Names())
	}

	noAction := true

	if opts.first {
		noAction = false
		for _, n := range names {
			sym := grammar.Symbol(n)
			sink.Output(fmt.Sprintf("first%d(%s) = %s", opts.k, sym, g.First(opts.k, grammar.NewWord(sym))))
		}
	}
	if opts.follow {
		noAction = false
		for _, n := range names {
			sym := grammar.Symbol(n)
			sink.Output(fmt.Sprintf("follow%d(%s) = %s", opts.k, sym, g.Follow(opts.k, sym)))
		}
	}
	if opts.lookahead {
		noAction = false
		restrict := grammar.NewSet[grammar.Symbol]()
		for _, n := range names {
			restrict.Add(grammar.Symbol(n))
		}
		for _, r := range g.Rules() {
			if !restrict.Has(r.Head) {
				continue
			}
			la := g.Lookahead(opts.k, r.Head, r.Body)
			sink.Output(fmt.Sprintf("%d-lookahead(%s) = %s", opts.k, r.String(), la))
		}
	}
	if opts.print {
		noAction = false
		var sb strings.Builder
		g.Print(&sb)
		sink.Output(strings.TrimRight(sb.String(), "\n"))
	}

	exitCode := ExitSuccess

	if opts.ll {
		noAction = false
		code := runLLAnalysis(opts, g, sink)
		if code != ExitSuccess {
			return code
		}
		exitCode = code
	}

	if noAction {
		var sb strings.Builder
		g.Print(&sb)
		sink.Output(strings.TrimRight(sb.String(), "\n"))
	}

	return exitCode
}

// runLLAnalysis implements the --ll branch: conflict analysis, optional
// table printing (with sqlite-backed memoization when no words are given
// and --cache was set), word recognition, and the --repl loop.
func runLLAnalysis(opts options, g *grammar.Grammar, sink diag.Sink) int {
	var cache *ltgcache.Cache
	var cacheKey string
	if opts.cache != "" && len(opts.words) == 0 && !opts.repl {
		var sb strings.Builder
		g.Print(&sb)
		cacheKey = ltgcache.Key(sb.String(), opts.k)

		var err error
		cache, err = ltgcache.Open(opts.cache)
		if err != nil {
			sink.Error(fmt.Sprintf("cache: %s", err.Error()))
		} else {
			defer cache.Close()
			if e, ok, err := cache.Get(cacheKey); err == nil && ok {
				sink.Info(fmt.Sprintf("%s is LL(%d) (cached).", opts.grammarPath, opts.k))
				if !e.IsLL {
					return ExitUsageOrGrammarError
				}
				writeTableOutput(opts, e.TableText, e.CSVText, sink)
				return ExitSuccess
			}
		}
	}

	report := ll.Analyze(opts.k, g)
	if !report.IsLL() {
		for _, c := range report.Conflicts {
			sink.Error(c.String())
		}
		sink.Error(fmt.Sprintf("%s is not LL(%d)!", opts.grammarPath, opts.k))
		if cache != nil {
			cache.Put(cacheKey, ltgcache.Entry{IsLL: false})
		}
		return ExitUsageOrGrammarError
	}
	sink.Info(fmt.Sprintf("%s is LL(%d).", opts.grammarPath, opts.k))

	needTable := opts.table || opts.genCSV || len(opts.words) > 0 || opts.tree || opts.dot || opts.repl
	if !needTable {
		return ExitSuccess
	}
	table := ll.NewTable(g, report)

	tableText, csvText := render.Table(table), render.TableCSV(table)
	if cache != nil {
		cache.Put(cacheKey, ltgcache.Entry{IsLL: true, TableText: tableText, CSVText: csvText})
	}
	if opts.table || opts.genCSV {
		writeTableOutput(opts, tableText, csvText, sink)
	}

	exitCode := ExitSuccess
	var treeOut strings.Builder
	for _, wordText := range opts.words {
		rejected := parseOneWord(table, wordText, opts, sink, &treeOut)
		if rejected {
			exitCode = ExitWordRejected
		}
	}
	if opts.repl {
		runRepl(table, opts, sink)
	}
	if (opts.tree || opts.dot) && treeOut.Len() > 0 {
		writeTreeOutput(opts, treeOut.String(), sink)
	}

	return exitCode
}

// parseOneWord runs the recognizer over one --words entry, streaming its
// step log through sink and, if requested, appending its parse tree
// rendering to treeOut. It reports whether the word was rejected.
func parseOneWord(table *ll.Table, wordText string, opts options, sink diag.Sink, treeOut *strings.Builder) bool {
	fields := strings.Fields(wordText)
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
		if treeOut.Len() > 0 {
			treeOut.WriteString("\n")
		}
		if opts.dot {
			treeOut.WriteString(render.TreeDot(treeObs.Root))
		} else {
			treeOut.WriteString(render.TreeIndented(treeObs.Root))
		}
	}

	return action.Kind == ll.ActionError
}

func writeTableOutput(opts options, tableText, csvText string, sink diag.Sink) {
	text := tableText
	ext := ".txt"
	if opts.genCSV {
		text, ext = csvText, ".csv"
	}
	writeOutput(opts, text, ext, sink)
}

func writeTreeOutput(opts options, text string, sink diag.Sink) {
	ext := ".txt"
	if opts.dot {
		ext = ".dot"
	}
	writeOutput(opts, text, ext, sink)
}

func writeOutput(opts options, text, ext string, sink diag.Sink) {
	if !opts.outputSet {
		sink.Output(text)
		return
	}

	path := opts.output
	if path == "" {
		base := strings.TrimSuffix(opts.grammarPath, filepath.Ext(opts.grammarPath))
		path = base + ext
	}

	if err := os.WriteFile(path, []byte(text+"\n"), 0644); err != nil {
		sink.Error(fmt.Sprintf("write %s: %s", path, err.Error()))
	}
}

func symbolsToStrings(syms []grammar.Symbol) []string {
	out := make([]string, len(syms))
	for i, s := range syms {
		out[i] = string(s)
	}
	return out
}
