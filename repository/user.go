package repository

import (
	"context"

	"github.com/taskmaster/taskmaster/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// GetByEmail returns the user together with its password hash; the hash
	// never leaves the auth use case.
	GetByEmail(ctx context.Context, email string) (*domain.User, string, error)
	Create(ctx context.Context, user *domain.User, passwordHash string) error
}
