package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/taskmaster/taskmaster/domain"
	"github.com/taskmaster/taskmaster/repository"
	"github.com/taskmaster/taskmaster/repository/inmemory"
	authUC "github.com/taskmaster/taskmaster/usecase/auth"
)

const testSecret = "unit-test-secret"

func newAuth(t *testing.T) (*authUC.UseCase, repository.UserRepository) {
	t.Helper()
	users := inmemory.NewUserRepository()
	sessions := inmemory.NewSessionRepository()
	uc := authUC.New(users, sessions, authUC.TokenConfig{
		Secret:     testSecret,
		Issuer:     "taskmaster-test",
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	}, zap.NewNop())
	return uc, users
}

func seedUser(t *testing.T, users repository.UserRepository, email, password string) *domain.User {
	t.Helper()
	hash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	require.NoError(t, err)
	user := &domain.User{Email: email}
	require.NoError(t, users.Create(context.Background(), user, hash))
	return user
}

func TestSignIn(t *testing.T) {
	ctx := context.Background()
	uc, users := newAuth(t)
	user := seedUser(t, users, "ana@example.com", "correct horse")

	session, err := uc.SignIn(ctx, "ana@example.com", "correct horse")
	require.NoError(t, err)
	assert.NotEmpty(t, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
	assert.Equal(t, user.ID, session.User.ID)
	assert.True(t, session.ExpiresAt.After(time.Now()))

	// the access token carries the owner id as subject
	token, err := jwt.Parse(session.AccessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, user.ID, claims["sub"])
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	uc, users := newAuth(t)
	seedUser(t, users, "ana@example.com", "correct horse")

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "ana@example.com", "battery staple"},
		{"unknown email", "nobody@example.com", "correct horse"},
		{"empty email", "", "correct horse"},
		{"empty password", "ana@example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.SignIn(ctx, tt.email, tt.password)
			require.Error(t, err)
			assert.True(t, domain.IsDomainError(err, domain.ErrCodeAuth))
		})
	}
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	uc, users := newAuth(t)
	user := seedUser(t, users, "ana@example.com", "correct horse")

	session, err := uc.SignIn(ctx, "ana@example.com", "correct horse")
	require.NoError(t, err)

	refreshed, err := uc.Refresh(ctx, session.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, session.RefreshToken, refreshed.RefreshToken)
	assert.Equal(t, user.ID, refreshed.User.ID)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefreshUnknownToken(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuth(t)

	_, err := uc.Refresh(ctx, "no-such-token")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))

	_, err = uc.Refresh(ctx, "")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}

func TestRevoke(t *testing.T) {
	ctx := context.Background()
	uc, users := newAuth(t)
	seedUser(t, users, "ana@example.com", "correct horse")

	session, err := uc.SignIn(ctx, "ana@example.com", "correct horse")
	require.NoError(t, err)

	require.NoError(t, uc.Revoke(ctx, session.RefreshToken))

	_, err = uc.Refresh(ctx, session.RefreshToken)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))

	// revoking twice is harmless
	require.NoError(t, uc.Revoke(ctx, session.RefreshToken))
}
