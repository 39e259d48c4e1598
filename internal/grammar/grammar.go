// Package grammar implements the data model of a context-free grammar, its
// text format, and the fixed-point FIRST_k/FOLLOW_k computations over it.
//
// The design is grounded in the original Python ltgen tool's lang.py
// (Grammar parsing and augmentation, first/follow/firstfollow) and in the
// teacher repository's internal/ictiobus/grammar package, whose Grammar/
// Production/LL1Table call conventions are mirrored by the types below.
package grammar

import (
	"fmt"
	"strings"
)

// Rule is a single production X -> w, a pair of a non-terminal head and a
// word over the full symbol alphabet.
type Rule struct {
	Head Symbol
	Body Word
}

// String renders a rule as "LHS -> RHS".
func (r Rule) String() string {
	return fmt.Sprintf("%s -> %s", r.Head, r.Body.String())
}

// Grammar is an ordered, immutable list of rules plus the derived sets
// described in spec.md §3: the non-terminal names, the terminal tokens, and
// the augmented axiom.
type Grammar struct {
	rules   []Rule
	names   []Symbol
	nameSet SymbolSet
	tokens  []Symbol
	tokSet  SymbolSet
	top     Symbol

	firstCache  map[string]WordSet
	followCache map[string]WordSet
}

// Rules returns the grammar's rules in stable, dense index order; rule 0 is
// always the synthetic augmented-start rule.
func (g *Grammar) Rules() []Rule {
	return g.rules
}

// Rule returns the rule at index n.
func (g *Grammar) Rule(n int) Rule {
	return g.rules[n]
}

// NumRules returns the number of rules, including the augmented rule 0.
func (g *Grammar) NumRules() int {
	return len(g.rules)
}

// Names returns the grammar's non-terminals, with the augmented start
// first.
func (g *Grammar) Names() []Symbol {
	return g.names
}

// Tokens returns the grammar's terminals (every RHS symbol that is not a
// non-terminal).
func (g *Grammar) Tokens() []Symbol {
	return g.tokens
}

// Top returns the augmented axiom.
func (g *Grammar) Top() Symbol {
	return g.top
}

// IsName returns whether sym is one of the grammar's non-terminals.
func (g *Grammar) IsName(sym Symbol) bool {
	return g.nameSet.Has(sym)
}

// IsToken returns whether sym is a terminal. The end marker is always
// considered a terminal, by convention, even if it never appears literally
// on a right-hand side.
func (g *Grammar) IsToken(sym Symbol) bool {
	if sym == EndMarker {
		return true
	}
	return g.tokSet.Has(sym)
}

// RulesFor returns, in rule-index order, every production whose head is X.
func (g *Grammar) RulesFor(X Symbol) []Rule {
	var out []Rule
	for _, r := range g.rules {
		if r.Head == X {
			out = append(out, r)
		}
	}
	return out
}

// Print writes the augmented grammar, one rule per line, numbered from 0.
func (g *Grammar) Print(w *strings.Builder) {
	for n, r := range g.rules {
		fmt.Fprintf(w, "(%d) %s\n", n, r.String())
	}
}

// New builds a Grammar from an already-parsed, non-empty rule list and
// performs augmentation (spec.md §3/§4.2). Callers that have grammar text
// rather than a rule list should use ParseText or ParseLines instead.
func New(path string, rules []Rule) (*Grammar, error) {
	if len(rules) == 0 {
		return nil, &EmptyGrammarError{Path: path}
	}

	g := &Grammar{
		firstCache:  make(map[string]WordSet),
		followCache: make(map[string]WordSet),
	}

	// Derive names and tokens from the user-supplied rules, in first-seen
	// order for deterministic display, before augmentation.
	g.nameSet = NewSet[Symbol]()
	seenNames := make(map[Symbol]bool)
	for _, r := range rules {
		if !seenNames[r.Head] {
			seenNames[r.Head] = true
			g.names = append(g.names, r.Head)
			g.nameSet.Add(r.Head)
		}
	}

	g.tokSet = NewSet[Symbol]()
	seenTokens := make(map[Symbol]bool)
	for _, r := range rules {
		for _, sym := range r.Body.Symbols() {
			if g.nameSet.Has(sym) {
				continue
			}
			if !seenTokens[sym] {
				seenTokens[sym] = true
				g.tokens = append(g.tokens, sym)
				g.tokSet.Add(sym)
			}
		}
	}

	// Choose a fresh augmented axiom: "S'", priming until it collides with
	// neither a name nor a token (spec.md §3, §9).
	top := augmentedStartBase
	for g.nameSet.Has(top) || g.tokSet.Has(top) {
		top = top + "'"
	}
	g.top = top
	g.nameSet.Add(top)
	g.names = append([]Symbol{top}, g.names...)

	augRule := Rule{Head: top, Body: NewWord(rules[0].Head)}
	g.rules = append([]Rule{augRule}, rules...)

	return g, nil
}

// ParseLines parses grammar text given as individual (not-yet-trimmed)
// lines, applying the line format from spec.md §4.2:
//
//  1. Strip a trailing "#..." comment and surrounding whitespace; skip
//     blank lines.
//  2. Split on the literal "->"; the left side must be exactly one
//     whitespace-delimited symbol (the LHS); the right side, split on
//     whitespace, is the RHS (possibly empty, an epsilon production).
//  3. Malformed lines are collected as non-fatal *ParseErrors and
//     discarded; parsing continues.
//
// An empty resulting rule list is reported as a fatal error and no Grammar
// is returned.
func ParseLines(path string, lines []string) (*Grammar, []error, error) {
	var rules []Rule
	var parseErrs []error

	for n, raw := range lines {
		lineNo := n + 1
		line := raw
		if i := strings.Index(line, "#"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		i := strings.Index(line, "->")
		if i < 0 {
			parseErrs = append(parseErrs, newParseError(path, lineNo, "malformed line: missing '->'"))
			continue
		}

		lhsFields := strings.Fields(line[:i])
		if len(lhsFields) != 1 {
			parseErrs = append(parseErrs, newParseError(path, lineNo, "malformed rule: left side must be exactly one symbol"))
			continue
		}

		rhsFields := strings.Fields(line[i+2:])
		rhsSyms := make([]Symbol, len(rhsFields))
		for j, f := range rhsFields {
			rhsSyms[j] = Symbol(f)
		}

		rules = append(rules, Rule{Head: Symbol(lhsFields[0]), Body: NewWord(rhsSyms...)})
	}

	if len(rules) == 0 {
		return nil, parseErrs, &EmptyGrammarError{Path: path}
	}

	g, err := New(path, rules)
	if err != nil {
		return nil, parseErrs, err
	}
	return g, parseErrs, nil
}

// ParseText parses grammar text supplied as a single string, splitting it
// into lines first.
func ParseText(path string, text string) (*Grammar, []error, error) {
	return ParseLines(path, strings.Split(text, "\n"))
}
