package inmem

import (
	"context"
	"testing"

	"github.com/hcasse/ltgen/server/dao"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersRepository_CreateAndGetByID(t *testing.T) {
	repo := NewUsersRepository()

	created, err := repo.Create(context.Background(), dao.User{Username: "alice"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	got, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestUsersRepository_CreateRejectsDuplicateUsername(t *testing.T) {
	repo := NewUsersRepository()

	_, err := repo.Create(context.Background(), dao.User{Username: "alice"})
	require.NoError(t, err)

	_, err = repo.Create(context.Background(), dao.User{Username: "alice"})
	assert.ErrorIs(t, err, dao.ErrConstraintViolation)
}

func TestUsersRepository_GetByUsername(t *testing.T) {
	repo := NewUsersRepository()

	created, err := repo.Create(context.Background(), dao.User{Username: "alice"})
	require.NoError(t, err)

	got, err := repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = repo.GetByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, dao.ErrNotFound)
}

func TestUsersRepository_GetAllSortedByID(t *testing.T) {
	repo := NewUsersRepository()

	a, err := repo.Create(context.Background(), dao.User{Username: "alice"})
	require.NoError(t, err)
	b, err := repo.Create(context.Background(), dao.User{Username: "bob"})
	require.NoError(t, err)

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)

	ids := []string{all[0].ID.String(), all[1].ID.String()}
	assert.Contains(t, ids, a.ID.String())
	assert.Contains(t, ids, b.ID.String())
	assert.True(t, ids[0] < ids[1])
}

func TestUsersRepository_Update(t *testing.T) {
	repo := NewUsersRepository()

	created, err := repo.Create(context.Background(), dao.User{Username: "alice"})
	require.NoError(t, err)

	created.Username = "alice2"
	updated, err := repo.Update(context.Background(), created.ID, created)
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
	assert.False(t, updated.Modified.IsZero())

	_, err = repo.GetByUsername(context.Background(), "alice")
	assert.ErrorIs(t, err, dao.ErrNotFound)

	got, err := repo.GetByUsername(context.Background(), "alice2")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestUsersRepository_UpdateNotFound(t *testing.T) {
	repo := NewUsersRepository()

	_, err := repo.Update(context.Background(), uuid.New(), dao.User{Username: "ghost"})
	assert.ErrorIs(t, err, dao.ErrNotFound)
}

func TestUsersRepository_Delete(t *testing.T) {
	repo := NewUsersRepository()

	created, err := repo.Create(context.Background(), dao.User{Username: "alice"})
	require.NoError(t, err)

	_, err = repo.Delete(context.Background(), created.ID)
	require.NoError(t, err)

	_, err = repo.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, dao.ErrNotFound)

	_, err = repo.GetByUsername(context.Background(), "alice")
	assert.ErrorIs(t, err, dao.ErrNotFound)
}
