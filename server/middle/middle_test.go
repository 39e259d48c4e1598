package middle

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hcasse/ltgen/server/dao"
	"github.com/hcasse/ltgen/server/dao/inmem"
	"github.com/hcasse/ltgen/server/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func echoHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_NoToken(t *testing.T) {
	users := inmem.NewUsersRepository()
	mw := RequireAuth(users, testSecret, 0, dao.User{})
	h := mw(echoHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	users := inmem.NewUsersRepository()
	u, err := users.Create(context.Background(), dao.User{Username: "alice", Password: "hashed"})
	require.NoError(t, err)

	tok, err := token.Generate(testSecret, u)
	require.NoError(t, err)

	var seenUser dao.User
	var seenLoggedIn bool
	h := RequireAuth(users, testSecret, 0, dao.User{})(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		seenUser = req.Context().Value(AuthUser).(dao.User)
		seenLoggedIn = req.Context().Value(AuthLoggedIn).(bool)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, seenLoggedIn)
	assert.Equal(t, u.ID, seenUser.ID)
}

func TestOptionalAuth_NoTokenStillCallsNext(t *testing.T) {
	users := inmem.NewUsersRepository()

	var seenLoggedIn bool
	h := OptionalAuth(users, testSecret, 0, dao.User{})(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		seenLoggedIn = req.Context().Value(AuthLoggedIn).(bool)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, seenLoggedIn)
}

func TestDontPanic_RecoversAndWrites500(t *testing.T) {
	h := DontPanic()(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		h.ServeHTTP(w, req)
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
