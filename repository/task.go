package repository

import (
	"context"

	"github.com/taskmaster/taskmaster/domain"
)

// TaskRepository is the storage contract for tasks. Every read and write is
// scoped to an owner; listing returns rows ordered by time-of-day ascending.
type TaskRepository interface {
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Task, error)
	GetByID(ctx context.Context, ownerID string, id int64) (*domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	UpdateStatus(ctx context.Context, ownerID string, id int64, status domain.Status) error
	Delete(ctx context.Context, ownerID string, id int64) error
}
