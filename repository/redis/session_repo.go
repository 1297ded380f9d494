package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redislib "github.com/redis/go-redis/v9"

	"github.com/taskmaster/taskmaster/domain"
	"github.com/taskmaster/taskmaster/repository"
)

type sessionRepository struct {
	client *redislib.Client
	prefix string
	ttl    time.Duration
}

// NewSessionRepository creates a Redis-backed refresh-grant store. Keys
// expire with the grant, so revocation on timeout needs no sweeper.
func NewSessionRepository(client *redislib.Client, ttl time.Duration) repository.SessionRepository {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &sessionRepository{
		client: client,
		prefix: "refresh:",
		ttl:    ttl,
	}
}

func (r *sessionRepository) Get(ctx context.Context, token string) (*domain.RefreshGrant, error) {
	result, err := r.client.Get(ctx, r.key(token)).Result()
	if err != nil {
		if err == redislib.Nil {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}

	var grant domain.RefreshGrant
	if err := json.Unmarshal([]byte(result), &grant); err != nil {
		return nil, err
	}
	return &grant, nil
}

func (r *sessionRepository) Save(ctx context.Context, grant *domain.RefreshGrant) error {
	if grant == nil || grant.Token == "" {
		return domain.ErrInvalidPayload
	}

	if grant.CreatedAt.IsZero() {
		grant.CreatedAt = time.Now()
	}
	if grant.ExpiresAt.Before(grant.CreatedAt) {
		grant.ExpiresAt = grant.CreatedAt.Add(r.ttl)
	}

	payload, err := json.Marshal(grant)
	if err != nil {
		return err
	}

	ttl := time.Until(grant.ExpiresAt)
	if ttl <= 0 {
		ttl = r.ttl
	}

	return r.client.Set(ctx, r.key(grant.Token), payload, ttl).Err()
}

func (r *sessionRepository) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, r.key(token)).Err()
}

func (r *sessionRepository) Extend(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = r.ttl
	}
	return r.client.Expire(ctx, r.key(token), ttl).Err()
}

func (r *sessionRepository) key(token string) string {
	return fmt.Sprintf("%s%s", r.prefix, token)
}
