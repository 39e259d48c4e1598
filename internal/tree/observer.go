package tree

import (
	"github.com/hcasse/ltgen/internal/grammar"
	"github.com/hcasse/ltgen/internal/ll"
)

// Observer is a ll.Observer that reconstructs the parse tree of an
// accepting run, mirroring the same stack discipline the recognizer itself
// uses: whatever the recognizer pushes, the observer pushes a matching tree
// node; whatever the recognizer pops, the observer pops one.
//
// Grounded on original_source/ll.py's ParseTreeObserver.
type Observer struct {
	Root *Tree

	k     int
	stack []*Tree
}

// NewObserver returns a tree-building observer. Root is unset until OnStart
// runs.
func NewObserver() *Observer {
	return &Observer{}
}

func (o *Observer) OnStart(p *ll.Parser) {
	o.k = p.K
	o.Root = &Tree{Symbol: p.G.Top(), Rule: -1}
	o.stack = make([]*Tree, 0, p.K+1)
	for i := 0; i < p.K; i++ {
		o.stack = append(o.stack, NewLeaf(grammar.EndMarker))
	}
	o.stack = append(o.stack, o.Root)
}

// FullLeaves returns Root's leaves followed by k copies of the end marker:
// the k bottom-of-stack sentinels that back Root but, not being part of any
// grammar production, are never attached into its tree. For an accepting
// run this equals the input word padded with k end markers (spec.md §4.8).
func (o *Observer) FullLeaves() []grammar.Symbol {
	leaves := o.Root.Leaves()
	for i := 0; i < o.k; i++ {
		leaves = append(leaves, grammar.EndMarker)
	}
	return leaves
}

func (o *Observer) OnNext(p *ll.Parser) {
	switch p.Action.Kind {
	case ll.ActionPop:
		o.stack = o.stack[:len(o.stack)-1]

	case ll.ActionExpand:
		parent := o.stack[len(o.stack)-1]
		parent.Rule = p.Action.Rule
		o.stack = o.stack[:len(o.stack)-1]

		body := p.G.Rule(p.Action.Rule).Body
		for i := body.Len() - 1; i >= 0; i-- {
			node := NewLeaf(body.At(i))
			o.stack = append(o.stack, node)
			parent.PrependChild(node)
		}
	}
}
