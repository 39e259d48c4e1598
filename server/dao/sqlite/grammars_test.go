package sqlite

import (
	"context"
	"testing"

	"github.com/hcasse/ltgen/server/dao"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGrammarsDB(t *testing.T) *GrammarsDB {
	t.Helper()
	db := openTestDB(t)
	repo := &GrammarsDB{db: db}
	require.NoError(t, repo.init())
	return repo
}

func TestGrammarsDB_CreateAndGetByID(t *testing.T) {
	repo := newTestGrammarsDB(t)
	owner := uuid.New()

	created, err := repo.Create(context.Background(), dao.Grammar{OwnerID: owner, Name: "g0", Text: "S -> a"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	got, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Text, got.Text)
	assert.Equal(t, owner, got.OwnerID)
}

func TestGrammarsDB_GetAllByUserSortedByName(t *testing.T) {
	repo := newTestGrammarsDB(t)
	owner := uuid.New()

	_, err := repo.Create(context.Background(), dao.Grammar{OwnerID: owner, Name: "zeta"})
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), dao.Grammar{OwnerID: owner, Name: "alpha"})
	require.NoError(t, err)

	all, err := repo.GetAllByUser(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "alpha", all[0].Name)
	assert.Equal(t, "zeta", all[1].Name)
}

func TestGrammarsDB_UpdateAndDelete(t *testing.T) {
	repo := newTestGrammarsDB(t)
	owner := uuid.New()

	created, err := repo.Create(context.Background(), dao.Grammar{OwnerID: owner, Name: "g0", Text: "S -> a"})
	require.NoError(t, err)

	created.Text = "S -> b"
	updated, err := repo.Update(context.Background(), created.ID, created)
	require.NoError(t, err)
	assert.Equal(t, "S -> b", updated.Text)

	_, err = repo.Delete(context.Background(), created.ID)
	require.NoError(t, err)

	_, err = repo.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, dao.ErrNotFound)
}

func TestGrammarsDB_UpdateNotFound(t *testing.T) {
	repo := newTestGrammarsDB(t)

	_, err := repo.Update(context.Background(), uuid.New(), dao.Grammar{Name: "ghost"})
	assert.ErrorIs(t, err, dao.ErrNotFound)
}
