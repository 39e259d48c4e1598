// Package render turns the analytical core's results (internal/ll,
// internal/tree) into the text/CSV/DOT formats the command-line front end
// and web UI present to a user. spec.md §1 is explicit that this rendering
// is an external collaborator of the core, not part of it -- so none of it
// lives in internal/ll or internal/tree themselves.
package render

import (
	"fmt"
	"strings"

	"github.com/dekarrin/rosed"

	"github.com/hcasse/ltgen/internal/ll"
)

// Table renders an LL(k) table as an aligned, bordered text grid: a header
// row of lookahead words, one row per non-terminal. Grounded on the
// teacher's internal/ictiobus/parse/{slr,lalr,clr1}.go automaton-table
// renderers, which all build a [][]string and hand it to
// rosed.Edit("").InsertTableOpts.
func Table(t *ll.Table) string {
	nts := t.NonTerminals()
	las := t.Lookaheads()

	header := []string{""}
	for _, la := range las {
		header = append(header, la.String())
	}

	data := [][]string{header}
	for ni, X := range nts {
		row := []string{string(X)}
		for li := range las {
			c := t.Cell(ni, li)
			if c == ll.ErrorRule {
				row = append(row, "ERR")
			} else {
				row = append(row, fmt.Sprintf("(%d)", c))
			}
		}
		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

// TableCSV renders an LL(k) table as CSV (spec.md §6 --gen-csv): one header
// row of lookahead words, one row per non-terminal, cell values are rule
// indices or "ERR". CSV is a fixed interchange format, not a display grid,
// so this builds it directly rather than through rosed's pretty-printer.
func TableCSV(t *ll.Table) string {
	var sb strings.Builder

	for _, la := range t.Lookaheads() {
		fmt.Fprintf(&sb, ",%s", la.String())
	}
	sb.WriteString("\n")

	for ni, X := range t.NonTerminals() {
		sb.WriteString(string(X))
		for li := range t.Lookaheads() {
			c := t.Cell(ni, li)
			if c == ll.ErrorRule {
				sb.WriteString(",ERR")
			} else {
				fmt.Fprintf(&sb, ",%d", c)
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
