package client

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/taskmaster/taskmaster/api/transport"
	"github.com/taskmaster/taskmaster/domain"
)

// Tasks translates application intents into remote store calls for the
// signed-in owner. Listing failures come back as FETCH errors, mutation
// failures as STORE errors, so callers can pick their own UI treatment
// instead of conflating "failed" with "empty".
type Tasks struct {
	client *Client
	logger *zap.Logger
}

// List fetches every task of the current owner ordered by time-of-day
// ascending, exactly as the server returns them.
func (t *Tasks) List(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := t.client.call(ctx, http.MethodGet, "/api/v1/tasks", nil, &tasks, true); err != nil {
		t.logger.Error("failed to list tasks", zap.Error(err))
		return nil, classify(err, domain.ErrCodeFetch)
	}
	return tasks, nil
}

// Create validates the draft locally before any network call; the remote
// store assigns the id and the pending status.
func (t *Tasks) Create(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	var created domain.Task
	if err := t.client.call(ctx, http.MethodPost, "/api/v1/tasks", draftRequest(draft), &created, true); err != nil {
		t.logger.Error("failed to create task", zap.Error(err))
		return nil, classify(err, domain.ErrCodeStore)
	}
	return &created, nil
}

// Update applies a full-field edit. Last write wins; there is no optimistic
// locking.
func (t *Tasks) Update(ctx context.Context, id int64, draft domain.TaskDraft) (*domain.Task, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	var updated domain.Task
	path := fmt.Sprintf("/api/v1/tasks/%d", id)
	if err := t.client.call(ctx, http.MethodPut, path, draftRequest(draft), &updated, true); err != nil {
		t.logger.Error("failed to update task", zap.Int64("task_id", id), zap.Error(err))
		return nil, classify(err, domain.ErrCodeStore)
	}
	return &updated, nil
}

// UpdateStatus applies a one-way transition out of pending. The transition
// rule lives in the domain; the store itself accepts any status.
func (t *Tasks) UpdateStatus(ctx context.Context, id int64, current, next domain.Status) error {
	if !current.CanTransitionTo(next) {
		return domain.ErrStatusTransition
	}

	path := fmt.Sprintf("/api/v1/tasks/%d/status", id)
	if err := t.client.call(ctx, http.MethodPatch, path, transport.StatusRequest{Status: int(next)}, nil, true); err != nil {
		t.logger.Error("failed to update task status", zap.Int64("task_id", id), zap.Error(err))
		return classify(err, domain.ErrCodeStore)
	}
	return nil
}

// Delete removes the task. A NOT_FOUND comes back as-is so the controller
// can treat a repeated delete as a no-op.
func (t *Tasks) Delete(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/api/v1/tasks/%d", id)
	if err := t.client.call(ctx, http.MethodDelete, path, nil, nil, true); err != nil {
		t.logger.Error("failed to delete task", zap.Int64("task_id", id), zap.Error(err))
		return classify(err, domain.ErrCodeStore)
	}
	return nil
}

func draftRequest(draft domain.TaskDraft) transport.TaskRequest {
	return transport.TaskRequest{
		Title:       draft.Title,
		Summary:     draft.Summary,
		Description: draft.Description,
		Time:        draft.Time,
	}
}
