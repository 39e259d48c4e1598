// Package tree builds the parse tree an accepting recognizer run produces,
// via a ll.Observer that mirrors the recognizer's own stack discipline.
// Rendering the tree (indented text, DOT graphs) is a front-end concern and
// lives in internal/render, not here.
//
// Grounded on original_source/lang.py's ParseTree and
// original_source/ll.py's ParseTreeObserver, in the teacher's Observer/tree
// idiom (internal/ictiobus/types/tree.go).
package tree

import "github.com/hcasse/ltgen/internal/grammar"

// Tree is one node of a parse tree: a symbol, and in derivation order, its
// children. Rule is the index of the production applied at this node, or -1
// for a leaf (terminal) or a node never expanded.
type Tree struct {
	Symbol   grammar.Symbol
	Rule     int
	Children []*Tree
}

// NewLeaf returns an unexpanded node for sym.
func NewLeaf(sym grammar.Symbol) *Tree {
	return &Tree{Symbol: sym, Rule: -1}
}

// PrependChild inserts child at the front of t's children, the order the
// recognizer discovers a production's right-hand side as it pushes symbols
// onto the stack (spec.md §4.8).
func (t *Tree) PrependChild(child *Tree) {
	t.Children = append([]*Tree{child}, t.Children...)
}

// Leaves returns the symbols at every leaf of t, left to right.
func (t *Tree) Leaves() []grammar.Symbol {
	if len(t.Children) == 0 {
		return []grammar.Symbol{t.Symbol}
	}
	var out []grammar.Symbol
	for _, c := range t.Children {
		out = append(out, c.Leaves()...)
	}
	return out
}

// Equal reports whether t and o have the same shape: same symbol, same
// rule, same children in the same order.
func (t *Tree) Equal(o *Tree) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.Symbol != o.Symbol || t.Rule != o.Rule {
		return false
	}
	if len(t.Children) != len(o.Children) {
		return false
	}
	for i := range t.Children {
		if !t.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}
