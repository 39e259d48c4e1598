package inmem

import (
	"context"
	"testing"

	"github.com/hcasse/ltgen/server/dao"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionsRepository_CreateGetDelete(t *testing.T) {
	repo := NewSessionsRepository()
	user := uuid.New()

	created, err := repo.Create(context.Background(), dao.Session{UserID: user})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)

	got, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	all, err := repo.GetAllByUser(context.Background(), user)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = repo.Delete(context.Background(), created.ID)
	require.NoError(t, err)

	_, err = repo.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, dao.ErrNotFound)
}

func TestSessionsRepository_GetByID_NotFound(t *testing.T) {
	repo := NewSessionsRepository()

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, dao.ErrNotFound)
}
