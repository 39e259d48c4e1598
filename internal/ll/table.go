package ll

import (
	"fmt"

	"github.com/hcasse/ltgen/internal/grammar"
)

// ErrorRule is the special table cell value meaning "no production applies
// here" (spec.md §3/§4.6).
const ErrorRule = -1

// Table is a dense two-dimensional dispatch from (non-terminal, k-word) to
// rule index, built from an LL(k) Report. Non-terminals and lookahead words
// are indexed into dense integer arrays for constant-time access, mirroring
// original_source/ll.py's Table class.
type Table struct {
	K int
	G *grammar.Grammar

	nts   []grammar.Symbol
	ntIdx map[grammar.Symbol]int

	las   []grammar.Word
	laIdx map[string]int

	cells [][]int
}

// wordKey builds a stable lookup key for a Word (Word has no exported key,
// so the table indexes by rendered string plus length to stay collision
// free across words that happen to render identically before padding).
func wordKey(w grammar.Word) string {
	return fmt.Sprintf("%d:%s", w.Len(), w.String())
}

// NewTable builds the LL(k) table from a successful analysis Report. The
// caller must have already verified report.IsLL(); NewTable does not
// re-check for conflicts, since a conflicting grammar has no valid table
// (spec.md §4.5: "On conflict ... no partial tables").
func NewTable(g *grammar.Grammar, report *Report) *Table {
	t := &Table{
		K:     report.K,
		G:     g,
		ntIdx: make(map[grammar.Symbol]int),
		laIdx: make(map[string]int),
	}

	for _, X := range g.Names() {
		t.ntIdx[X] = len(t.nts)
		t.nts = append(t.nts, X)
	}

	seen := make(map[string]bool)
	for _, la := range report.Lookaheads {
		for _, w := range la.Set.Elements() {
			key := wordKey(w)
			if seen[key] {
				continue
			}
			seen[key] = true
			t.laIdx[key] = len(t.las)
			t.las = append(t.las, w)
		}
	}

	t.cells = make([][]int, len(t.nts))
	for i := range t.cells {
		row := make([]int, len(t.las))
		for j := range row {
			row[j] = ErrorRule
		}
		t.cells[i] = row
	}

	for _, la := range report.Lookaheads {
		ni := t.ntIdx[la.Head]
		for _, w := range la.Set.Elements() {
			li := t.laIdx[wordKey(w)]
			// Because the grammar was accepted as LL(k), no cell is written
			// more than once (spec.md §4.6).
			t.cells[ni][li] = la.Rule
		}
	}

	return t
}

// NonTerminals returns the non-terminals indexing the table's rows.
func (t *Table) NonTerminals() []grammar.Symbol {
	return t.nts
}

// Lookaheads returns the lookahead words indexing the table's columns.
func (t *Table) Lookaheads() []grammar.Word {
	return t.las
}

// At returns the rule index to expand for non-terminal X given lookahead
// word p, or ErrorRule if p is not among the table's known lookahead words
// or the cell was never written (spec.md §4.6).
func (t *Table) At(X grammar.Symbol, p grammar.Word) int {
	ni, ok := t.ntIdx[X]
	if !ok {
		return ErrorRule
	}
	li, ok := t.laIdx[wordKey(p)]
	if !ok {
		return ErrorRule
	}
	return t.cells[ni][li]
}

// Cell returns the raw rule index at (non-terminal index, lookahead index),
// for renderers that want to walk the dense array directly rather than
// through At's symbol/word lookup.
func (t *Table) Cell(ntIndex, laIndex int) int {
	return t.cells[ntIndex][laIndex]
}
