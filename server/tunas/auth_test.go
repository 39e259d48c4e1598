package tunas

import (
	"context"
	"testing"

	"github.com/hcasse/ltgen/server/dao"
	"github.com/hcasse/ltgen/server/serr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	svc := newTestService()

	created, err := svc.CreateUser(context.Background(), "alice", "hunter2", "", dao.Normal)
	require.NoError(t, err)
	assert.True(t, created.LastLoginTime.IsZero())

	user, err := svc.Login(context.Background(), "alice", "hunter2")
	require.NoError(t, err)
	assert.False(t, user.LastLoginTime.IsZero())
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateUser(context.Background(), "alice", "hunter2", "", dao.Normal)
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "alice", "wrongpass")
	assert.ErrorIs(t, err, serr.ErrBadCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := newTestService()

	_, err := svc.Login(context.Background(), "nobody", "hunter2")
	assert.ErrorIs(t, err, serr.ErrBadCredentials)
}

func TestLogout(t *testing.T) {
	svc := newTestService()

	created, err := svc.CreateUser(context.Background(), "alice", "hunter2", "", dao.Normal)
	require.NoError(t, err)

	updated, err := svc.Logout(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, updated.LastLogoutTime.IsZero())
}

func TestLogout_UnknownUser(t *testing.T) {
	svc := newTestService()

	_, err := svc.Logout(context.Background(), mustRandomUUID(t))
	assert.ErrorIs(t, err, serr.ErrNotFound)
}
