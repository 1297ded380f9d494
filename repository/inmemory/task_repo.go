package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/taskmaster/taskmaster/domain"
	"github.com/taskmaster/taskmaster/repository"
)

type taskRepository struct {
	mu     sync.RWMutex
	nextID int64
	tasks  map[int64]domain.Task
}

// NewTaskRepository returns an in-memory TaskRepository used by tests and
// local development. It mirrors the Postgres ordering contract.
func NewTaskRepository() repository.TaskRepository {
	return &taskRepository{
		nextID: 1,
		tasks:  make(map[int64]domain.Task),
	}
}

func (r *taskRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var tasks []domain.Task
	for _, t := range r.tasks {
		if t.OwnerID == ownerID {
			tasks = append(tasks, t)
		}
	}
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].Time != tasks[j].Time {
			return tasks[i].Time < tasks[j].Time
		}
		return tasks[i].ID < tasks[j].ID
	})
	return tasks, nil
}

func (r *taskRepository) GetByID(ctx context.Context, ownerID string, id int64) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok || t.OwnerID != ownerID {
		return nil, domain.ErrTaskNotFound
	}
	copied := t
	return &copied, nil
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	task.ID = r.nextID
	r.nextID++
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now
	r.tasks[task.ID] = *task
	return task, nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.tasks[task.ID]
	if !ok || existing.OwnerID != task.OwnerID {
		return domain.ErrTaskNotFound
	}

	existing.Title = task.Title
	existing.Summary = task.Summary
	existing.Description = task.Description
	existing.Time = task.Time
	existing.UpdatedAt = time.Now()
	r.tasks[task.ID] = existing

	task.Status = existing.Status
	task.CreatedAt = existing.CreatedAt
	task.UpdatedAt = existing.UpdatedAt
	return nil
}

func (r *taskRepository) UpdateStatus(ctx context.Context, ownerID string, id int64, status domain.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.tasks[id]
	if !ok || existing.OwnerID != ownerID {
		return domain.ErrTaskNotFound
	}
	existing.Status = status
	existing.UpdatedAt = time.Now()
	r.tasks[id] = existing
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, ownerID string, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.tasks[id]
	if !ok || existing.OwnerID != ownerID {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}
