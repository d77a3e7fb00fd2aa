package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jobtechradar/radar/internal/client/client"
	"github.com/jobtechradar/radar/internal/client/models"
	"github.com/jobtechradar/radar/internal/client/repositories/metadata"
	"github.com/jobtechradar/radar/internal/logging"

	_ "modernc.org/sqlite"
)

var dbSeq int

func setupSession(t *testing.T, api *fakeClient) (*Session, *client.Repositories) {
	t.Helper()
	dbSeq++
	dsn := fmt.Sprintf("file:session_tests_%d?mode=memory&cache=shared", dbSeq)
	repos, err := client.InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.DB.Close() })
	return NewSession(api, repos, logging.Nop()), repos
}

func storedToken(t *testing.T, repos *client.Repositories) (string, error) {
	t.Helper()
	return repos.Metadata.Get(context.Background(), metadata.KeyToken)
}

func TestRestore_NoToken(t *testing.T) {
	s, _ := setupSession(t, &fakeClient{})

	s.Restore(context.Background())

	require.False(t, s.IsAuthenticated())
	require.Nil(t, s.User())
}

func TestRestore_ValidToken(t *testing.T) {
	api := &fakeClient{currentUser: models.User{ID: 1, Username: "alice"}}
	s, repos := setupSession(t, api)
	require.NoError(t, repos.Metadata.Set(context.Background(), metadata.KeyToken, "tok-restored"))

	s.Restore(context.Background())

	require.True(t, s.IsAuthenticated())
	require.Equal(t, "alice", s.User().Username)
	require.Equal(t, "tok-restored", api.lastToken)
}

func TestRestore_BadToken_Discarded(t *testing.T) {
	api := &fakeClient{currentUserErr: client.ErrUnauthorized}
	s, repos := setupSession(t, api)
	require.NoError(t, repos.Metadata.Set(context.Background(), metadata.KeyToken, "stale"))

	s.Restore(context.Background())

	require.False(t, s.IsAuthenticated())
	_, err := storedToken(t, repos)
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestLogin_Success(t *testing.T) {
	api := &fakeClient{
		loginToken:  "tok-123",
		currentUser: models.User{ID: 1, Email: "user@example.com", Username: "user"},
	}
	s, repos := setupSession(t, api)

	require.NoError(t, s.Login(context.Background(), "user@example.com", "password123"))

	require.True(t, s.IsAuthenticated())
	require.Empty(t, s.Err())
	require.False(t, s.Loading())
	require.Equal(t, [2]string{"user@example.com", "password123"}, api.lastLogin)

	tok, err := storedToken(t, repos)
	require.NoError(t, err)
	require.Equal(t, "tok-123", tok)
}

func TestLogin_BadCredentials(t *testing.T) {
	api := &fakeClient{loginErr: client.ErrUnauthorized}
	s, repos := setupSession(t, api)

	err := s.Login(context.Background(), "user@example.com", "wrong")
	require.ErrorIs(t, err, client.ErrUnauthorized)

	require.False(t, s.IsAuthenticated())
	require.Equal(t, "Échec de la connexion. Vérifiez vos identifiants.", s.Err())
	require.False(t, s.Loading())

	_, serr := storedToken(t, repos)
	require.ErrorIs(t, serr, sql.ErrNoRows)
}

func TestLogin_UserFetchFails_NotAuthenticated(t *testing.T) {
	api := &fakeClient{loginToken: "tok", currentUserErr: errors.New("boom")}
	s, _ := setupSession(t, api)

	require.Error(t, s.Login(context.Background(), "u", "p"))
	require.False(t, s.IsAuthenticated())
	require.NotEmpty(t, s.Err())
}

func TestLogin_SingleFlight(t *testing.T) {
	s, _ := setupSession(t, &fakeClient{})

	// Simulate an in-flight operation holding the guard.
	require.NoError(t, s.beginOp())
	defer s.endOp()

	err := s.Login(context.Background(), "u", "p")
	require.ErrorIs(t, err, ErrBusy)
}

func TestRegister_AutoLogin(t *testing.T) {
	api := &fakeClient{
		registerUser: models.User{ID: 2, Email: "new@example.com", Username: "newbie"},
		loginToken:   "tok-new",
		currentUser:  models.User{ID: 2, Email: "new@example.com", Username: "newbie"},
	}
	s, repos := setupSession(t, api)

	require.NoError(t, s.Register(context.Background(), "new@example.com", "newbie", "password123"))

	require.Equal(t, [3]string{"new@example.com", "newbie", "password123"}, api.lastRegister)
	// The auto-login reuses the registration credentials.
	require.Equal(t, [2]string{"new@example.com", "password123"}, api.lastLogin)
	require.True(t, s.IsAuthenticated())

	tok, err := storedToken(t, repos)
	require.NoError(t, err)
	require.Equal(t, "tok-new", tok)
}

func TestRegister_DetailSurfaced(t *testing.T) {
	api := &fakeClient{registerErr: &client.APIError{StatusCode: 400, Detail: "Email already registered"}}
	s, _ := setupSession(t, api)

	require.Error(t, s.Register(context.Background(), "dup@example.com", "dup", "password123"))
	require.Equal(t, "Échec de l'inscription: Email already registered", s.Err())
	require.Zero(t, api.loginCalls)
}

func TestRegister_GenericMessage(t *testing.T) {
	api := &fakeClient{registerErr: errors.New("connection reset")}
	s, _ := setupSession(t, api)

	require.Error(t, s.Register(context.Background(), "a@b.c", "ab", "password123"))
	require.Equal(t, "Échec de l'inscription. Veuillez réessayer.", s.Err())
}

func TestLogout(t *testing.T) {
	api := &fakeClient{loginToken: "tok", currentUser: models.User{ID: 1, Username: "alice"}}
	s, repos := setupSession(t, api)
	require.NoError(t, s.Login(context.Background(), "alice", "password123"))

	require.NoError(t, s.Logout(context.Background()))

	require.False(t, s.IsAuthenticated())
	require.Nil(t, s.User())
	require.Empty(t, s.Err())

	_, err := storedToken(t, repos)
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestUser_ReturnsCopy(t *testing.T) {
	api := &fakeClient{loginToken: "tok", currentUser: models.User{ID: 1, Username: "alice"}}
	s, _ := setupSession(t, api)
	require.NoError(t, s.Login(context.Background(), "alice", "password123"))

	u := s.User()
	u.Username = "mallory"
	require.Equal(t, "alice", s.User().Username)
}
