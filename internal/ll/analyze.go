// Package ll implements LL(k) conflict analysis, LL(k) table construction,
// and the pushdown recognizer that drives a built table over an input word.
//
// Grounded on the original ltgen tool's ll.py (analyze, lookahead, Table,
// Parser, Observer, ParseTreeObserver) and, for the recognizer's stack/tree
// dual-walk shape, on the teacher's internal/ictiobus/parse/ll1.go.
package ll

import (
	"fmt"

	"github.com/hcasse/ltgen/internal/grammar"
)

// Lookahead is one production's k-lookahead result: the rule index, its
// non-terminal head, its right-hand side, and the set of words that predict
// it.
type Lookahead struct {
	Rule int
	Head grammar.Symbol
	Body grammar.Word
	Set  grammar.WordSet
}

// Conflict reports that two productions of the same non-terminal have
// overlapping lookahead sets.
type Conflict struct {
	RuleA, RuleB int
	Overlap      grammar.WordSet
}

// String renders a conflict the way the original tool's analyzer does:
// "Ii conflicts with Ij: { ... }".
func (c Conflict) String() string {
	return fmt.Sprintf("I%d conflicts with I%d: %s", c.RuleA, c.RuleB, c.Overlap.String())
}

// Report is the full result of an LL(k) analysis: every production's
// lookahead set, and every pairwise conflict found. The grammar is LL(k)
// iff Conflicts is empty.
type Report struct {
	K           int
	Lookaheads  []Lookahead
	Conflicts   []Conflict
}

// IsLL reports whether the analyzed grammar is LL(k): no two alternatives of
// the same non-terminal have overlapping lookahead sets.
func (r *Report) IsLL() bool {
	return len(r.Conflicts) == 0
}

// Analyze performs an LL(k) analysis of g, computing the lookahead set of
// every production and flagging every conflicting pair. All conflicts in
// the grammar are reported; analysis never stops at the first one found
// (spec.md §4.5).
func Analyze(k int, g *grammar.Grammar) *Report {
	report := &Report{K: k}

	for _, X := range g.Names() {
		var forX []Lookahead
		for n, rule := range g.Rules() {
			if rule.Head != X {
				continue
			}
			la := Lookahead{
				Rule: n,
				Head: X,
				Body: rule.Body,
				Set:  g.Lookahead(k, X, rule.Body),
			}
			forX = append(forX, la)
		}
		report.Lookaheads = append(report.Lookaheads, forX...)

		for i := 0; i < len(forX); i++ {
			for j := i + 1; j < len(forX); j++ {
				overlap := forX[i].Set.Intersect(forX[j].Set)
				if overlap.Len() > 0 {
					report.Conflicts = append(report.Conflicts, Conflict{
						RuleA:   forX[i].Rule,
						RuleB:   forX[j].Rule,
						Overlap: overlap,
					})
				}
			}
		}
	}

	return report
}
