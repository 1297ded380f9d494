package inmemory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/taskmaster/taskmaster/domain"
	"github.com/taskmaster/taskmaster/repository"
)

type userRecord struct {
	user domain.User
	hash string
}

type userRepository struct {
	mu      sync.RWMutex
	byID    map[string]userRecord
	byEmail map[string]string
}

// NewUserRepository returns an in-memory UserRepository.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		byID:    make(map[string]userRecord),
		byEmail: make(map[string]string),
	}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	user := rec.user
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, "", domain.ErrUserNotFound
	}
	rec := r.byID[id]
	user := rec.user
	return &user, rec.hash, nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User, passwordHash string) error {
	if user == nil || user.Email == "" {
		return domain.ErrInvalidPayload
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	r.byID[user.ID] = userRecord{user: *user, hash: passwordHash}
	r.byEmail[user.Email] = user.ID
	return nil
}
