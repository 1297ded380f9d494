package inmemory

import (
	"context"
	"sync"
	"time"

	"github.com/taskmaster/taskmaster/domain"
	"github.com/taskmaster/taskmaster/repository"
)

type sessionRepository struct {
	mu     sync.RWMutex
	grants map[string]domain.RefreshGrant
}

// NewSessionRepository returns an in-memory refresh-grant store.
func NewSessionRepository() repository.SessionRepository {
	return &sessionRepository{
		grants: make(map[string]domain.RefreshGrant),
	}
}

func (r *sessionRepository) Get(ctx context.Context, token string) (*domain.RefreshGrant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	grant, ok := r.grants[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	copied := grant
	return &copied, nil
}

func (r *sessionRepository) Save(ctx context.Context, grant *domain.RefreshGrant) error {
	if grant == nil || grant.Token == "" {
		return domain.ErrInvalidPayload
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if grant.CreatedAt.IsZero() {
		grant.CreatedAt = time.Now()
	}
	r.grants[grant.Token] = *grant
	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.grants, token)
	return nil
}

func (r *sessionRepository) Extend(ctx context.Context, token string, ttl time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	grant, ok := r.grants[token]
	if !ok {
		return domain.ErrSessionNotFound
	}
	grant.ExpiresAt = time.Now().Add(ttl)
	r.grants[token] = grant
	return nil
}
