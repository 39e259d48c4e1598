package render

import (
	"fmt"
	"strings"

	"github.com/hcasse/ltgen/internal/tree"
)

// TreeIndented renders t as an indented tree, one node per line, each
// internal node followed by " +" and its children pipe-prefixed under it --
// the format of original_source/lang.py's ParseTree.write_rec.
func TreeIndented(t *tree.Tree) string {
	var sb strings.Builder
	writeIndented(&sb, t, "", true)
	return sb.String()
}

func writeIndented(sb *strings.Builder, t *tree.Tree, prefix string, last bool) {
	sb.WriteString(prefix)
	sb.WriteString(string(t.Symbol))
	if len(t.Children) == 0 {
		sb.WriteString("\n")
		return
	}
	sb.WriteString(" +\n")
	if last {
		cut := len(prefix) - 2
		if cut < 0 {
			cut = 0
		}
		prefix = prefix[:cut] + "  "
	}
	childPrefix := prefix + strings.Repeat(" ", len(t.Symbol)) + " | "
	for i, c := range t.Children {
		writeIndented(sb, c, childPrefix, i == len(t.Children)-1)
	}
}

// TreeDot renders t as a Graphviz DOT digraph: one node per tree node, one
// edge per parent-child relationship, with the edge to the "middle" child
// labeled with the rule index applied at the parent (spec.md §6's DOT
// output description, grounded on lang.py's ParseTree.write_dot).
func TreeDot(t *tree.Tree) string {
	var sb strings.Builder
	sb.WriteString("digraph G {\n")
	sb.WriteString("node [ordering=\"out\"];\n")

	ids := make(map[*tree.Tree]int)
	next := 0
	assignID := func(n *tree.Tree) int {
		if id, ok := ids[n]; ok {
			return id
		}
		id := next
		next++
		ids[n] = id
		return id
	}

	var nodes func(n *tree.Tree)
	nodes = func(n *tree.Tree) {
		id := assignID(n)
		fmt.Fprintf(&sb, "n%d [label=%q];\n", id, string(n.Symbol))
		for _, c := range n.Children {
			nodes(c)
		}
	}
	nodes(t)

	var edges func(n *tree.Tree)
	edges = func(n *tree.Tree) {
		mid := -1
		if n.Rule >= 0 {
			mid = len(n.Children) / 2
		}
		for i, c := range n.Children {
			fmt.Fprintf(&sb, "n%d -> n%d", ids[n], ids[c])
			if i == mid {
				fmt.Fprintf(&sb, " [label=\"(%d)\"]", n.Rule)
			}
			sb.WriteString(";\n")
			edges(c)
		}
	}
	edges(t)

	sb.WriteString("}\n")
	return sb.String()
}
