/*
Ltgen analyzes a context-free grammar for LL(k)-ness: FIRST_k/FOLLOW_k sets,
per-production lookahead, conflict detection, LL(k) table construction, and
recognition of word lists against the built table.

Usage:

	ltgen [flags] GRAMMAR-PATH [NAME ...]

NAME restricts --first/--follow/--lookahead to the named non-terminals;
with none given, every non-terminal in the grammar is reported.

The flags are:

	--k N
		Analysis depth (default 1).

	--first, --follow, --lookahead
		Print the respective sets for each requested non-terminal (or,
		for --lookahead, each requested rule).

	--ll
		Perform LL(k) analysis. On conflict, report every conflicting
		pair and exit 1; no table is built.

	--table
		Build and print the LL(k) table (requires --ll).

	--gen-csv
		Emit the table as CSV instead of a padded grid (requires --ll).

	--print
		Print the augmented grammar, numbered from rule 0.

	-w, --words "w1 w2 ..." (repeatable)
		Parse each whitespace-separated word against the built table
		and print its recognizer step log (requires --ll).

	--tree, --dot
		Alongside --words, also emit each accepted word's parse tree,
		indented or as Graphviz DOT.

	-o, --output [PATH]
		Redirect table/tree output to PATH. Given with no PATH, the
		path is derived from the grammar file's name.

	--repl
		After a successful --ll, read words one per line from an
		interactive prompt instead of (or in addition to) --words.

	--cache PATH
		Memoize table output in a sqlite file at PATH, keyed by
		grammar text and k; skipped whenever --words is also given.

	--config PATH
		Load defaults for --k and --cache from a TOML file (default
		".ltgenrc" if present). Flags always override the file.

With no analysis flag given, ltgen prints the augmented grammar, same as
--print.

Exit codes: 0 success; 1 usage or grammar error, or the grammar is not
LL(k); 2 one or more words were rejected by the recognizer.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/hcasse/ltgen/internal/diag"
)

const (
	// ExitSuccess indicates every requested analysis succeeded.
	ExitSuccess = 0
	// ExitUsageOrGrammarError indicates bad flags, an unreadable grammar
	// file, or a grammar that failed its requested LL(k) analysis.
	ExitUsageOrGrammarError = 1
	// ExitWordRejected indicates every analysis ran, but at least one
	// --words entry was rejected by the recognizer.
	ExitWordRejected = 2
)

// options is the fully-resolved set of settings a run operates under, after
// flags and any .ltgenrc defaults have been merged.
type options struct {
	grammarPath string
	names       []string

	k                                            int
	first, follow, lookahead, ll, table, genCSV  bool
	print, tree, dot, repl                       bool
	words                                        []string
	output                                       string
	outputSet                                    bool
	cache                                        string
}

func parseArgs(argv []string) (options, error) {
	fs := pflag.NewFlagSet("ltgen", pflag.ContinueOnError)

	k := fs.Int("k", 1, "analysis depth")
	first := fs.Bool("first", false, "compute FIRST_k")
	follow := fs.Bool("follow", false, "compute FOLLOW_k")
	lookahead := fs.Bool("lookahead", false, "compute per-production lookahead")
	ll := fs.Bool("ll", false, "perform LL(k) analysis")
	table := fs.Bool("table", false, "build and print the LL(k) table")
	genCSV := fs.Bool("gen-csv", false, "emit the table as CSV")
	print := fs.Bool("print", false, "print the augmented grammar")
	words := fs.StringArrayP("words", "w", nil, "parse a word (repeatable)")
	tree := fs.Bool("tree", false, "emit the parse tree, indented")
	dot := fs.Bool("dot", false, "emit the parse tree as Graphviz DOT")
	output := fs.StringP("output", "o", "", "redirect table/tree output to a file")
	repl := fs.Bool("repl", false, "read words interactively after --ll")
	cache := fs.String("cache", "", "memoize table output in a sqlite file")
	config := fs.String("config", ".ltgenrc", "TOML file with default settings")

	fs.Lookup("output").NoOptDefVal = ""

	if err := fs.Parse(argv); err != nil {
		return options{}, err
	}

	args := fs.Args()
	if len(args) < 1 {
		return options{}, fmt.Errorf("missing required grammar path")
	}

	fcfg, err := loadFileConfig(*config)
	if err != nil {
		return options{}, fmt.Errorf("load config %s: %w", *config, err)
	}
	if !fs.Changed("k") && fcfg.K != 0 {
		*k = fcfg.K
	}
	if !fs.Changed("cache") && fcfg.Cache != "" {
		*cache = fcfg.Cache
	}

	return options{
		grammarPath: args[0],
		names:       args[1:],

		k:         *k,
		first:     *first,
		follow:    *follow,
		lookahead: *lookahead,
		ll:        *ll,
		table:     *table,
		genCSV:    *genCSV,
		print:     *print,
		words:     *words,
		tree:      *tree,
		dot:       *dot,
		repl:      *repl,
		output:    *output,
		outputSet: fs.Lookup("output").Changed,
		cache:     *cache,
	}, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\nDo -h for help.\n", err.Error())
		os.Exit(ExitUsageOrGrammarError)
	}

	sink := diag.NewStdSink()
	os.Exit(run(opts, sink))
}
