package repository

import (
	"context"
	"time"

	"github.com/taskmaster/taskmaster/domain"
)

// SessionRepository stores refresh grants keyed by token.
type SessionRepository interface {
	Get(ctx context.Context, token string) (*domain.RefreshGrant, error)
	Save(ctx context.Context, grant *domain.RefreshGrant) error
	Delete(ctx context.Context, token string) error
	Extend(ctx context.Context, token string, ttl time.Duration) error
}
