package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hcasse/ltgen/internal/grammar"
	"github.com/hcasse/ltgen/internal/ll"
)

func mustBuildExprTable(t *testing.T) *ll.Table {
	t.Helper()
	g, parseErrs, fatal := grammar.ParseText("expr", "E -> T E2\nE2 -> + T E2\nE2 ->\nT -> id\n")
	require.NoError(t, fatal)
	require.Empty(t, parseErrs)

	report := ll.Analyze(1, g)
	require.True(t, report.IsLL())
	return ll.NewTable(g, report)
}

func TestTableContainsRuleMarkers(t *testing.T) {
	table := mustBuildExprTable(t)
	out := Table(table)

	assert.Contains(t, out, "(1)")
	assert.Contains(t, out, "ERR")
}

func TestTableCSVContainsHeaderAndRules(t *testing.T) {
	table := mustBuildExprTable(t)
	out := TableCSV(table)

	assert.Contains(t, out, ",")
	assert.Contains(t, out, "(4)")
	assert.Contains(t, out, "ERR")
}
