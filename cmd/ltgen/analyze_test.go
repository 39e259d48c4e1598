package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hcasse/ltgen/internal/diag"
)

const exprGrammarText = "E -> T E2\nE2 -> + T E2\nE2 ->\nT -> id\n"

const g0GrammarText = "S -> a a b\nS -> a R\nR -> a b\nR -> b c R\nR -> d R b\n"

func writeGrammarFile(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "g.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))
	return path
}

func TestParseArgs_MissingGrammarPath(t *testing.T) {
	_, err := parseArgs(nil)
	assert.Error(t, err)
}

func TestParseArgs_OutputFlagWithNoValueMeansDerive(t *testing.T) {
	opts, err := parseArgs([]string{"-o", "g.txt"})
	require.NoError(t, err)
	assert.True(t, opts.outputSet)
	assert.Equal(t, "", opts.output)
	assert.Equal(t, 1, opts.k)
}

func TestRun_NoFlags_PrintsAugmentedGrammar(t *testing.T) {
	path := writeGrammarFile(t, exprGrammarText)
	opts, err := parseArgs([]string{path})
	require.NoError(t, err)

	var buf diag.Buffer
	code := run(opts, &buf)

	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, buf.String(), "(0)")
	assert.Contains(t, buf.String(), "E -> T E2")
}

func TestRun_FirstAndFollow(t *testing.T) {
	path := writeGrammarFile(t, exprGrammarText)
	opts, err := parseArgs([]string{"--first", "--follow", path})
	require.NoError(t, err)

	var buf diag.Buffer
	code := run(opts, &buf)

	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, buf.String(), "first1(")
	assert.Contains(t, buf.String(), "follow1(")
}

func TestRun_LL_AmbiguousGrammarExitsOne(t *testing.T) {
	path := writeGrammarFile(t, g0GrammarText)
	opts, err := parseArgs([]string{"--ll", path})
	require.NoError(t, err)

	var buf diag.Buffer
	code := run(opts, &buf)

	assert.Equal(t, ExitUsageOrGrammarError, code)
	assert.Contains(t, buf.String(), "not LL(1)")
}

func TestRun_LL_AcceptsWordAndBuildsTable(t *testing.T) {
	path := writeGrammarFile(t, exprGrammarText)
	opts, err := parseArgs([]string{"--ll", "--table", "-w", "id + id", path})
	require.NoError(t, err)

	var buf diag.Buffer
	code := run(opts, &buf)

	require.Equal(t, ExitSuccess, code)
	assert.Contains(t, buf.String(), "is LL(1)")
	assert.Contains(t, buf.String(), "accept")
}

func TestRun_LL_RejectsWordExitsTwo(t *testing.T) {
	path := writeGrammarFile(t, exprGrammarText)
	opts, err := parseArgs([]string{"--ll", "-w", "id +", path})
	require.NoError(t, err)

	var buf diag.Buffer
	code := run(opts, &buf)

	assert.Equal(t, ExitWordRejected, code)
	assert.Contains(t, buf.String(), "error")
}

func TestRun_LL_CachesTableAcrossRuns(t *testing.T) {
	path := writeGrammarFile(t, exprGrammarText)
	cachePath := filepath.Join(t.TempDir(), "cache.db")

	opts, err := parseArgs([]string{"--ll", "--table", "--cache", cachePath, path})
	require.NoError(t, err)

	var first diag.Buffer
	require.Equal(t, ExitSuccess, run(opts, &first))
	assert.NotContains(t, first.String(), "(cached)")

	var second diag.Buffer
	require.Equal(t, ExitSuccess, run(opts, &second))
	assert.Contains(t, second.String(), "(cached)")
}

func TestRun_Print_NumbersRulesFromZero(t *testing.T) {
	path := writeGrammarFile(t, exprGrammarText)
	opts, err := parseArgs([]string{"--print", path})
	require.NoError(t, err)

	var buf diag.Buffer
	run(opts, &buf)

	lines := strings.Split(buf.String(), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "(0)"))
}

func TestRun_MissingGrammarFile(t *testing.T) {
	opts, err := parseArgs([]string{filepath.Join(t.TempDir(), "missing.txt")})
	require.NoError(t, err)

	var buf diag.Buffer
	code := run(opts, &buf)
	assert.Equal(t, ExitUsageOrGrammarError, code)
}
