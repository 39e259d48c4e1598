package ll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hcasse/ltgen/internal/grammar"
)

// g0Text is the grammar used throughout spec.md §8. It is ambiguous (S -> a R
// with R -> a b derives the same string "a a b" as S -> a a b directly), so
// it conflicts under every k; it is used here only the way spec.md uses it,
// to exercise FIRST_k/FOLLOW_k/lookahead mechanics, not as an LL(k)-accepted
// grammar.
const g0Text = `
S -> a a b
S -> a R
R -> a b
R -> b c R
R -> d R b
`

func mustParseG0(t *testing.T) *grammar.Grammar {
	t.Helper()
	g, parseErrs, fatal := grammar.ParseText("g0", g0Text)
	require.NoError(t, fatal)
	require.Empty(t, parseErrs)
	return g
}

// exprText is a small, genuinely LL(1) grammar used to test Analyze/Table
// success paths without G_0's built-in ambiguity.
const exprText = `
E -> T E2
E2 -> + T E2
E2 ->
T -> id
`

func mustParseExpr(t *testing.T) *grammar.Grammar {
	t.Helper()
	g, parseErrs, fatal := grammar.ParseText("expr", exprText)
	require.NoError(t, fatal)
	require.Empty(t, parseErrs)
	return g
}

func TestAnalyzeG0ConflictsBecauseAmbiguous(t *testing.T) {
	g := mustParseG0(t)

	// S -> a a b and S -> a R (with R -> a b) both derive "a a b"; the
	// conflict shows up in the lookahead sets regardless of k.
	report := Analyze(1, g)
	require.False(t, report.IsLL())
	require.Len(t, report.Conflicts, 1)
	assert.True(t, report.Conflicts[0].Overlap.Has(grammar.NewWord("a")))
}

func TestAnalyzeAcceptsLL1Grammar(t *testing.T) {
	g := mustParseExpr(t)

	report := Analyze(1, g)
	assert.True(t, report.IsLL())
	assert.Empty(t, report.Conflicts)
	// augmented rule + 4 user rules
	assert.Len(t, report.Lookaheads, 5)
}

func TestAnalyzeReportsAllConflictsNotJustFirst(t *testing.T) {
	// Three alternatives of S all start with "a" under k=1: three pairwise
	// conflicts must all be reported, not just the first found.
	g, parseErrs, fatal := grammar.ParseText("triple", "S -> a\nS -> a b\nS -> a c\n")
	require.NoError(t, fatal)
	require.Empty(t, parseErrs)

	report := Analyze(1, g)
	assert.Len(t, report.Conflicts, 3)
}

func TestConflictString(t *testing.T) {
	c := Conflict{RuleA: 1, RuleB: 2, Overlap: grammar.NewWordSet(grammar.NewWord("a"))}
	assert.Equal(t, "I1 conflicts with I2: { a }", c.String())
}
