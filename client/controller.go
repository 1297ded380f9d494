package client

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/taskmaster/taskmaster/domain"
)

// TaskAPI is what the list controller needs from the task repository.
// *Tasks satisfies it; tests substitute a mock.
type TaskAPI interface {
	List(ctx context.Context) ([]domain.Task, error)
	Create(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error)
	Update(ctx context.Context, id int64, draft domain.TaskDraft) (*domain.Task, error)
	UpdateStatus(ctx context.Context, id int64, current, next domain.Status) error
	Delete(ctx context.Context, id int64) error
}

// ListController owns the in-memory task collection for the current session.
// Every mutation except Remove is followed by a wholesale Refresh; with a
// list of tens of items that trade is deliberate.
type ListController struct {
	api    TaskAPI
	logger *zap.Logger

	mu    sync.RWMutex
	tasks []domain.Task
}

func NewListController(api TaskAPI, logger *zap.Logger) *ListController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ListController{
		api:    api,
		logger: logger,
	}
}

// Tasks returns a snapshot of the collection in server order. The controller
// never re-sorts; ordering is whatever the last refresh delivered.
func (c *ListController) Tasks() []domain.Task {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// Refresh re-derives the whole list from the remote store. On failure the
// view falls back to empty and the error is returned, so the caller decides
// whether to show "no tasks" or "fetch failed".
func (c *ListController) Refresh(ctx context.Context) error {
	tasks, err := c.api.List(ctx)
	if err != nil {
		c.logger.Error("refresh failed", zap.Error(err))
		tasks = nil
	}

	c.mu.Lock()
	c.tasks = tasks
	c.mu.Unlock()
	return err
}

// Create submits the draft and refreshes.
func (c *ListController) Create(ctx context.Context, draft domain.TaskDraft) error {
	if _, err := c.api.Create(ctx, draft); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// Update applies a full-field edit and refreshes.
func (c *ListController) Update(ctx context.Context, id int64, draft domain.TaskDraft) error {
	if _, err := c.api.Update(ctx, id, draft); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// SetStatus transitions the task out of pending and refreshes. The current
// status comes from local state so the transition check matches what the
// user is looking at.
func (c *ListController) SetStatus(ctx context.Context, id int64, next domain.Status) error {
	current, ok := c.find(id)
	if !ok {
		return domain.ErrTaskNotFound
	}
	if err := c.api.UpdateStatus(ctx, id, current.Status, next); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// Remove deletes the task and filters it out of local state without a
// refetch. A task already gone on the server counts as success.
func (c *ListController) Remove(ctx context.Context, id int64) error {
	if err := c.api.Delete(ctx, id); err != nil && !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		return err
	}

	c.mu.Lock()
	filtered := c.tasks[:0]
	for _, t := range c.tasks {
		if t.ID != id {
			filtered = append(filtered, t)
		}
	}
	c.tasks = filtered
	c.mu.Unlock()
	return nil
}

func (c *ListController) find(id int64) (domain.Task, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, t := range c.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Task{}, false
}
