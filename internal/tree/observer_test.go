package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hcasse/ltgen/internal/grammar"
	"github.com/hcasse/ltgen/internal/ll"
)

// g0Text is the grammar from spec.md §8.
const g0Text = `
S -> a a b
S -> a R
R -> a b
R -> b c R
R -> d R b
`

// scenarioSixTable builds the same minimal depth-1 table the spec.md §8
// scenario 6 walk drives: the augmented start on "a", and S -> a a b on
// "a". See internal/ll's own scenarioSixTable for why the full grammar
// isn't analyzed here (it's ambiguous, so has no unique table).
func scenarioSixTable(t *testing.T) (*grammar.Grammar, *ll.Table) {
	t.Helper()
	g, parseErrs, fatal := grammar.ParseText("g0", g0Text)
	require.NoError(t, fatal)
	require.Empty(t, parseErrs)

	var aab int
	for n, r := range g.Rules() {
		if r.Head == "S" && r.Body.Equal(grammar.NewWord("a", "a", "b")) {
			aab = n
		}
	}

	report := &ll.Report{
		K: 1,
		Lookaheads: []ll.Lookahead{
			{Rule: 0, Head: g.Top(), Body: g.Rule(0).Body, Set: grammar.NewWordSet(grammar.NewWord("a"))},
			{Rule: aab, Head: "S", Body: g.Rule(aab).Body, Set: grammar.NewWordSet(grammar.NewWord("a"))},
		},
	}
	return g, ll.NewTable(g, report)
}

func TestObserverBuildsExpectedShape(t *testing.T) {
	g, table := scenarioSixTable(t)
	obs := NewObserver()

	p := ll.NewParser(table, grammar.NewWord("a", "a", "b"), obs)
	p.Run()

	require.NotNil(t, obs.Root)
	assert.Equal(t, g.Top(), obs.Root.Symbol)
	require.Len(t, obs.Root.Children, 1)
	assert.Equal(t, grammar.Symbol("S"), obs.Root.Children[0].Symbol)

	s := obs.Root.Children[0]
	require.Len(t, s.Children, 3)
	assert.Equal(t, grammar.Symbol("a"), s.Children[0].Symbol)
	assert.Equal(t, grammar.Symbol("a"), s.Children[1].Symbol)
	assert.Equal(t, grammar.Symbol("b"), s.Children[2].Symbol)

	for _, c := range s.Children {
		assert.Empty(t, c.Children)
	}
}

func TestObserverLeavesMatchInput(t *testing.T) {
	// The k bottom-of-stack end-marker placeholders the observer seeds in
	// OnStart are never attached into Root's tree -- they exist only to
	// keep the shadow stack's depth in lockstep with the recognizer's own
	// stack -- so Root's own leaves are exactly the input word, with no
	// trailing "$".
	_, table := scenarioSixTable(t)
	obs := NewObserver()

	p := ll.NewParser(table, grammar.NewWord("a", "a", "b"), obs)
	p.Run()

	assert.Equal(t, []grammar.Symbol{"a", "a", "b"}, obs.Root.Leaves())
}

func TestObserverFullLeavesIncludeEndMarkers(t *testing.T) {
	_, table := scenarioSixTable(t)
	obs := NewObserver()

	p := ll.NewParser(table, grammar.NewWord("a", "a", "b"), obs)
	p.Run()

	want := []grammar.Symbol{"a", "a", "b", grammar.EndMarker}
	assert.Equal(t, want, obs.FullLeaves())
}
