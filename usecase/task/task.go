package task

import (
	"context"

	"go.uber.org/zap"

	"github.com/taskmaster/taskmaster/domain"
	"github.com/taskmaster/taskmaster/repository"
)

type UseCase struct {
	tasks  repository.TaskRepository
	logger *zap.Logger
}

func New(tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		logger: logger,
	}
}

// ListTasks returns every task of the owner ordered by time-of-day ascending.
func (uc *UseCase) ListTasks(ctx context.Context, ownerID string) ([]domain.Task, error) {
	return uc.tasks.ListByOwner(ctx, ownerID)
}

func (uc *UseCase) GetTask(ctx context.Context, ownerID string, id int64) (*domain.Task, error) {
	return uc.tasks.GetByID(ctx, ownerID, id)
}

// CreateTask inserts a new task for the owner. Status always starts as
// pending regardless of what the caller submitted.
func (uc *UseCase) CreateTask(ctx context.Context, ownerID string, draft domain.TaskDraft) (*domain.Task, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	task := &domain.Task{
		OwnerID:     ownerID,
		Title:       draft.Title,
		Summary:     draft.Summary,
		Description: draft.Description,
		Time:        draft.Time,
		Status:      domain.StatusPending,
	}
	return uc.tasks.Create(ctx, task)
}

// UpdateTask applies a full-field edit. Status is untouched; last write wins.
func (uc *UseCase) UpdateTask(ctx context.Context, ownerID string, id int64, draft domain.TaskDraft) (*domain.Task, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	task := &domain.Task{
		ID:          id,
		OwnerID:     ownerID,
		Title:       draft.Title,
		Summary:     draft.Summary,
		Description: draft.Description,
		Time:        draft.Time,
	}
	if err := uc.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateStatus sets the status code directly. The store stays free of
// transition policy; one-way transitions are a client-side concern.
func (uc *UseCase) UpdateStatus(ctx context.Context, ownerID string, id int64, status domain.Status) error {
	if !status.Valid() {
		return domain.ErrInvalidPayload
	}
	return uc.tasks.UpdateStatus(ctx, ownerID, id, status)
}

func (uc *UseCase) DeleteTask(ctx context.Context, ownerID string, id int64) error {
	return uc.tasks.Delete(ctx, ownerID, id)
}
