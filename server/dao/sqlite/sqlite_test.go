package sqlite

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNewDatastore_ProvidesAllRepositories(t *testing.T) {
	store, err := NewDatastore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	require.NotNil(t, store.Users())
	require.NotNil(t, store.Sessions())
	require.NotNil(t, store.Grammars())
}
