package grammar

import "fmt"

// First computes FIRST_k(alpha): the set of length-<=k prefixes of terminal
// words derivable from alpha, per spec.md §4.3. Results are memoised per
// (k, alpha) for the lifetime of the grammar.
//
// Grounded on original_source/lang.py's first(), including its essential
// termination guard: an alternative X -> gamma is skipped when expanding X
// at the head of alpha if gamma itself begins with X (immediate left
// recursion).
func (g *Grammar) First(k int, alpha Word) WordSet {
	if k == 0 || alpha.IsEmpty() {
		return NewWordSet(Epsilon)
	}

	cacheKey := fmt.Sprintf("%d:%s", k, alpha.key())
	if cached, ok := g.firstCache[cacheKey]; ok {
		return cached
	}

	head := alpha.Head()
	rest := alpha.Tail()

	var result WordSet
	if g.IsToken(head) {
		result = NewWordSet()
		for _, p := range g.First(k-1, rest).Elements() {
			result.Add(NewWord(head).Concat(p))
		}
	} else {
		result = NewWordSet()
		for _, prod := range g.RulesFor(head) {
			gamma := prod.Body
			if !gamma.IsEmpty() && gamma.Head() == head {
				// Immediate left recursion: skip this alternative entirely,
				// the guard needed for termination (spec.md §4.3).
				continue
			}
			result.AddAll(g.First(k, gamma.Concat(rest)))
		}
	}

	g.firstCache[cacheKey] = result
	return result
}

// firstFollow computes firstfollow(k, X, beta) = the k-prefixes of
// FIRST_k(beta) lengthened with FOLLOW(X) wherever beta could run out
// before k symbols are produced (spec.md §4.4). This is the building block
// shared by FOLLOW_k and the LL lookahead computation.
func (g *Grammar) firstFollow(k int, X Symbol, beta Word) WordSet {
	P := g.First(k, beta)
	result := NewWordSet()
	for _, p := range P.Elements() {
		if p.Len() >= k {
			result.Add(p.Prefix(k))
			continue
		}
		for _, f := range g.Follow(k-p.Len(), X).Elements() {
			result.Add(p.Concat(f).Prefix(k))
		}
	}
	return result
}

// Lookahead computes lookahead(k, X, gamma), the set of k-prefixes of
// terminal strings that may follow a derivation starting with the
// production X -> gamma, used by the LL(k) analyzer (spec.md §4.5).
func (g *Grammar) Lookahead(k int, X Symbol, gamma Word) WordSet {
	return g.firstFollow(k, X, gamma)
}

// Follow computes FOLLOW_k(X): the set of length-<=k prefixes of terminal
// words (right-padded with end markers) that can follow X in some
// sentential form derived from the augmented axiom (spec.md §4.4).
func (g *Grammar) Follow(k int, X Symbol) WordSet {
	return g.followRec(k, X, NewSet[Symbol]())
}

// followRec implements rec_follow from original_source/lang.py: guard is the
// set of non-terminals already being computed higher up the call stack, so
// that a FOLLOW computation that would re-enter one of them contributes the
// empty set for that branch instead of recursing forever.
func (g *Grammar) followRec(k int, X Symbol, guard SymbolSet) WordSet {
	if guard.Has(X) {
		return NewWordSet()
	}
	if k == 0 {
		return NewWordSet(Epsilon)
	}
	if X == g.top {
		return NewWordSet(NewWord(EndMarker).Repeat(k))
	}

	topLevel := guard.Len() == 0
	cacheKey := fmt.Sprintf("%d:%s", k, X)
	if topLevel {
		if cached, ok := g.followCache[cacheKey]; ok {
			return cached
		}
	}

	nextGuard := guard.Copy()
	nextGuard.Add(X)

	result := NewWordSet()
	for _, rule := range g.rules {
		Y := rule.Head
		gamma := rule.Body
		for i := 0; i < gamma.Len(); i++ {
			if gamma.At(i) != X {
				continue
			}
			if i == gamma.Len()-1 {
				result.AddAll(g.followRec(k, Y, nextGuard))
			} else {
				beta := gamma.Slice(i+1, gamma.Len())
				result.AddAll(g.firstFollow(k, Y, beta))
			}
		}
	}

	if topLevel {
		g.followCache[cacheKey] = result
	}
	return result
}
