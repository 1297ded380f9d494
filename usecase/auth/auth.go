package auth

import (
	"context"
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/taskmaster/taskmaster/domain"
	"github.com/taskmaster/taskmaster/repository"
)

// TokenConfig controls how access tokens and refresh grants are issued.
type TokenConfig struct {
	Secret     string
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func (c TokenConfig) withDefaults() TokenConfig {
	if c.AccessTTL <= 0 {
		c.AccessTTL = time.Hour
	}
	if c.RefreshTTL <= 0 {
		c.RefreshTTL = 24 * time.Hour
	}
	return c
}

type UseCase struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	cfg      TokenConfig
	logger   *zap.Logger
}

func New(users repository.UserRepository, sessions repository.SessionRepository, cfg TokenConfig, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:    users,
		sessions: sessions,
		cfg:      cfg.withDefaults(),
		logger:   logger,
	}
}

// SignIn verifies the password and issues a session: a signed access token
// plus a refresh grant persisted with the refresh TTL. Unknown emails and
// bad passwords are both reported as invalid credentials.
func (uc *UseCase) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, hash, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		if domain.IsDomainError(err, domain.ErrCodeNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	match, err := argon2id.ComparePasswordAndHash(password, hash)
	if err != nil {
		return nil, err
	}
	if !match {
		uc.logger.Warn("password mismatch", zap.String("user_id", user.ID))
		return nil, domain.ErrInvalidCredentials
	}

	grant := &domain.RefreshGrant{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(uc.cfg.RefreshTTL),
	}
	if err := uc.sessions.Save(ctx, grant); err != nil {
		return nil, err
	}

	return uc.issueSession(user, grant.Token)
}

// Refresh exchanges a refresh token for a new access token and extends the
// grant's lifetime. Expired grants are deleted on sight.
func (uc *UseCase) Refresh(ctx context.Context, refreshToken string) (*domain.Session, error) {
	if refreshToken == "" {
		return nil, domain.ErrSessionNotFound
	}

	grant, err := uc.sessions.Get(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if grant.IsExpired(time.Now()) {
		_ = uc.sessions.Delete(ctx, refreshToken)
		return nil, domain.ErrSessionNotFound
	}

	user, err := uc.users.GetByID(ctx, grant.UserID)
	if err != nil {
		return nil, err
	}

	if err := uc.sessions.Extend(ctx, refreshToken, uc.cfg.RefreshTTL); err != nil {
		return nil, err
	}

	return uc.issueSession(user, refreshToken)
}

// Revoke deletes the refresh grant behind a sign-out.
func (uc *UseCase) Revoke(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	return uc.sessions.Delete(ctx, refreshToken)
}

func (uc *UseCase) issueSession(user *domain.User, refreshToken string) (*domain.Session, error) {
	expiresAt := time.Now().Add(uc.cfg.AccessTTL)

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iss":   uc.cfg.Issuer,
		"exp":   expiresAt.Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(uc.cfg.Secret))
	if err != nil {
		return nil, err
	}

	return &domain.Session{
		AccessToken:  signed,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		User:         *user,
	}, nil
}
