package tunas

import (
	"context"
	"testing"

	"github.com/hcasse/ltgen/server/dao"
	"github.com/hcasse/ltgen/server/serr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	svc := newTestService()

	u, err := svc.CreateUser(context.Background(), "alice", "hunter2", "alice@example.com", dao.Normal)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, dao.Normal, u.Role)
	assert.NotEqual(t, "hunter2", u.Password, "password must be hashed, not stored in plaintext")
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateUser(context.Background(), "alice", "hunter2", "", dao.Normal)
	require.NoError(t, err)

	_, err = svc.CreateUser(context.Background(), "alice", "differentpass", "", dao.Normal)
	require.Error(t, err)
	assert.ErrorIs(t, err, serr.ErrAlreadyExists)
}

func TestCreateUser_BlankUsernameOrPassword(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateUser(context.Background(), "", "hunter2", "", dao.Normal)
	assert.ErrorIs(t, err, serr.ErrBadArgument)

	_, err = svc.CreateUser(context.Background(), "alice", "", "", dao.Normal)
	assert.ErrorIs(t, err, serr.ErrBadArgument)
}

func TestCreateUser_InvalidEmail(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateUser(context.Background(), "alice", "hunter2", "not-an-email", dao.Normal)
	require.Error(t, err)
	assert.ErrorIs(t, err, serr.ErrBadArgument)
}

func TestGetUser(t *testing.T) {
	svc := newTestService()

	created, err := svc.CreateUser(context.Background(), "alice", "hunter2", "", dao.Normal)
	require.NoError(t, err)

	got, err := svc.GetUser(context.Background(), created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created.Username, got.Username)
}

func TestGetUser_NotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetUser(context.Background(), mustRandomUUID(t).String())
	assert.ErrorIs(t, err, serr.ErrNotFound)
}

func TestGetUser_BadID(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetUser(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, serr.ErrBadArgument)
}

func TestUpdateUser(t *testing.T) {
	svc := newTestService()

	created, err := svc.CreateUser(context.Background(), "alice", "hunter2", "", dao.Normal)
	require.NoError(t, err)

	updated, err := svc.UpdateUser(context.Background(), created.ID.String(), "alice2", "alice2@example.com", dao.Admin)
	require.NoError(t, err)
	assert.Equal(t, "alice2", updated.Username)
	assert.Equal(t, dao.Admin, updated.Role)
	require.NotNil(t, updated.Email)
	assert.Equal(t, "alice2@example.com", updated.Email.Address)
}

func TestUpdateUser_CollidesWithAnotherUsername(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateUser(context.Background(), "alice", "hunter2", "", dao.Normal)
	require.NoError(t, err)
	bob, err := svc.CreateUser(context.Background(), "bob", "hunter2", "", dao.Normal)
	require.NoError(t, err)

	_, err = svc.UpdateUser(context.Background(), bob.ID.String(), "alice", "", dao.Normal)
	require.Error(t, err)
	assert.ErrorIs(t, err, serr.ErrAlreadyExists)
}

func TestUpdatePassword(t *testing.T) {
	svc := newTestService()

	created, err := svc.CreateUser(context.Background(), "alice", "hunter2", "", dao.Normal)
	require.NoError(t, err)

	updated, err := svc.UpdatePassword(context.Background(), created.ID.String(), "newpassword")
	require.NoError(t, err)
	assert.NotEqual(t, created.Password, updated.Password)

	// old password no longer works
	_, err = svc.Login(context.Background(), "alice", "hunter2")
	assert.ErrorIs(t, err, serr.ErrBadCredentials)

	// new password works
	_, err = svc.Login(context.Background(), "alice", "newpassword")
	assert.NoError(t, err)
}

func TestDeleteUser(t *testing.T) {
	svc := newTestService()

	created, err := svc.CreateUser(context.Background(), "alice", "hunter2", "", dao.Normal)
	require.NoError(t, err)

	_, err = svc.DeleteUser(context.Background(), created.ID.String())
	require.NoError(t, err)

	_, err = svc.GetUser(context.Background(), created.ID.String())
	assert.ErrorIs(t, err, serr.ErrNotFound)
}
