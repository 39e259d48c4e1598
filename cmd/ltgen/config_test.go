package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileConfig_MissingFileIsNotAnError(t *testing.T) {
	cfg, err := loadFileConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, fileConfig{}, cfg)
}

func TestLoadFileConfig_ReadsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".ltgenrc")
	require.NoError(t, os.WriteFile(path, []byte("k = 2\ncache = \"cache.db\"\n"), 0644))

	cfg, err := loadFileConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.K)
	assert.Equal(t, "cache.db", cfg.Cache)
}

func TestLoadFileConfig_FlagsOverrideFileDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".ltgenrc")
	require.NoError(t, os.WriteFile(path, []byte("k = 5\n"), 0644))

	grammarPath := writeGrammarFile(t, exprGrammarText)
	opts, err := parseArgs([]string{"--config", path, "--k", "3", grammarPath})
	require.NoError(t, err)

	assert.Equal(t, 3, opts.k)
}

func TestLoadFileConfig_AppliesWhenFlagNotSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".ltgenrc")
	require.NoError(t, os.WriteFile(path, []byte("k = 5\n"), 0644))

	grammarPath := writeGrammarFile(t, exprGrammarText)
	opts, err := parseArgs([]string{"--config", path, grammarPath})
	require.NoError(t, err)

	assert.Equal(t, 5, opts.k)
}
