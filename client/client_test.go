package client_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskmaster/taskmaster/client"
	"github.com/taskmaster/taskmaster/domain"
)

func TestNewRequiresBaseURL(t *testing.T) {
	_, err := client.New(client.Config{}, nil, nil)
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestSignInBlankFieldsFailBeforeNetwork(t *testing.T) {
	// no server behind this URL; blank fields must not produce a dial
	c, err := client.New(client.Config{BaseURL: "http://127.0.0.1:1"}, nil, nil)
	require.NoError(t, err)

	for _, creds := range [][2]string{{"", "secret"}, {"ana@example.com", ""}, {"", ""}} {
		_, err := c.SignIn(context.Background(), creds[0], creds[1])
		require.Error(t, err)
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeAuth))
		assert.Equal(t, "please fill in all fields", err.Error())
	}
}

func TestOnSessionChangeCancel(t *testing.T) {
	c, err := client.New(client.Config{BaseURL: "http://127.0.0.1:1"}, nil, nil)
	require.NoError(t, err)

	calls := 0
	cancel := c.OnSessionChange(func(session *domain.Session) {
		calls++
	})
	cancel()

	// sign-out on an already signed-out client does not notify either way
	require.NoError(t, c.SignOut(context.Background()))
	assert.Zero(t, calls)

	// cancelling twice is harmless
	cancel()
}

func TestBoltSessionStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	store, err := client.NewBoltSessionStore(path)
	require.NoError(t, err)

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	session := &domain.Session{
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresAt:    time.Now().Add(time.Hour).UTC(),
		User:         domain.User{ID: "user-1", Email: "ana@example.com"},
	}
	require.NoError(t, store.Save(session))
	require.NoError(t, store.Close())

	// persists across reopen, the app-restart path
	store, err = client.NewBoltSessionStore(path)
	require.NoError(t, err)
	defer store.Close()

	loaded, err = store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "refresh", loaded.RefreshToken)
	assert.Equal(t, "user-1", loaded.User.ID)

	require.NoError(t, store.Clear())
	loaded, err = store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStartRestoresPersistedSession(t *testing.T) {
	store := client.NewMemorySessionStore()
	session := &domain.Session{
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresAt:    time.Now().Add(time.Hour),
		User:         domain.User{ID: "user-1"},
	}
	require.NoError(t, store.Save(session))

	c, err := client.New(client.Config{BaseURL: "http://127.0.0.1:1"}, store, nil)
	require.NoError(t, err)

	var notified *domain.Session
	c.OnSessionChange(func(s *domain.Session) { notified = s })

	require.NoError(t, c.Start(context.Background()))
	defer c.Stop()

	current := c.CurrentSession()
	require.NotNil(t, current)
	assert.Equal(t, "user-1", current.User.ID)
	// restoring a stored session flows through the notification path
	require.NotNil(t, notified)
	assert.Equal(t, "user-1", notified.User.ID)
}

func TestStartStopIdempotent(t *testing.T) {
	c, err := client.New(client.Config{BaseURL: "http://127.0.0.1:1"}, nil, nil)
	require.NoError(t, err)

	require.NoError(t, c.Start(context.Background()))
	require.NoError(t, c.Start(context.Background()))
	c.Stop()
	c.Stop()
}
