package task_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/taskmaster/taskmaster/domain"
	"github.com/taskmaster/taskmaster/repository/inmemory"
	taskUC "github.com/taskmaster/taskmaster/usecase/task"
)

func newUseCase() *taskUC.UseCase {
	return taskUC.New(inmemory.NewTaskRepository(), zap.NewNop())
}

func draft(title, timeOfDay string) domain.TaskDraft {
	return domain.TaskDraft{
		Title:       title,
		Summary:     "summary",
		Description: "description",
		Time:        timeOfDay,
	}
}

func TestCreateTaskDefaultsToPending(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()

	created, err := uc.CreateTask(ctx, "owner-1", draft("Clean the floor", "10:00"))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, "owner-1", created.OwnerID)
	assert.NotZero(t, created.ID)

	tasks, err := uc.ListTasks(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Clean the floor", tasks[0].Title)
	assert.Equal(t, domain.StatusPending, tasks[0].Status)
}

func TestCreateTaskRejectsBlankField(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()

	_, err := uc.CreateTask(ctx, "owner-1", draft("   ", "10:00"))
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeValidation))
	assert.Equal(t, "title", domain.ValidationField(err))

	tasks, err := uc.ListTasks(ctx, "owner-1")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestListTasksOrderedByTime(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()

	for _, timeOfDay := range []string{"18:00", "10:00", "16:00"} {
		_, err := uc.CreateTask(ctx, "owner-1", draft("task", timeOfDay))
		require.NoError(t, err)
	}

	tasks, err := uc.ListTasks(ctx, "owner-1")
	require.NoError(t, err)
	times := make([]string, len(tasks))
	for i, task := range tasks {
		times[i] = task.Time
	}
	assert.Equal(t, []string{"10:00", "16:00", "18:00"}, times)
}

func TestUpdateTaskPreservesIdentity(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()

	created, err := uc.CreateTask(ctx, "owner-1", draft("before", "10:00"))
	require.NoError(t, err)

	updated, err := uc.UpdateTask(ctx, "owner-1", created.ID, draft("after", "11:00"))
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "owner-1", updated.OwnerID)
	assert.Equal(t, "after", updated.Title)
	assert.Equal(t, "11:00", updated.Time)
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()

	created, err := uc.CreateTask(ctx, "owner-1", draft("task", "10:00"))
	require.NoError(t, err)

	require.NoError(t, uc.UpdateStatus(ctx, "owner-1", created.ID, domain.StatusCompleted))

	got, err := uc.GetTask(ctx, "owner-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, got.Status)

	err = uc.UpdateStatus(ctx, "owner-1", created.ID, domain.Status(7))
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestDeleteTask(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase()

	created, err := uc.CreateTask(ctx, "owner-1", draft("task", "10:00"))
	require.NoError(t, err)

	require.NoError(t, uc.DeleteTask(ctx, "owner-1", created.ID))

	tasks, err := uc.ListTasks(ctx, "owner-1")
	require.NoError(t, err)
	assert.Empty(t, tasks)

	err = uc.DeleteTask(ctx, "owner-1", created.ID)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}
