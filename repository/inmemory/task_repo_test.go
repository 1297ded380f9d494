package inmemory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskmaster/taskmaster/domain"
	"github.com/taskmaster/taskmaster/repository/inmemory"
)

func newTask(owner, title, timeOfDay string) *domain.Task {
	return &domain.Task{
		OwnerID:     owner,
		Title:       title,
		Summary:     "summary",
		Description: "description",
		Time:        timeOfDay,
		Status:      domain.StatusPending,
	}
}

func TestListByOwnerOrdersByTime(t *testing.T) {
	ctx := context.Background()
	repo := inmemory.NewTaskRepository()

	for _, timeOfDay := range []string{"18:00", "10:00", "16:00"} {
		_, err := repo.Create(ctx, newTask("owner-1", "t "+timeOfDay, timeOfDay))
		require.NoError(t, err)
	}

	tasks, err := repo.ListByOwner(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "10:00", tasks[0].Time)
	assert.Equal(t, "16:00", tasks[1].Time)
	assert.Equal(t, "18:00", tasks[2].Time)
}

func TestListByOwnerScopesToOwner(t *testing.T) {
	ctx := context.Background()
	repo := inmemory.NewTaskRepository()

	_, err := repo.Create(ctx, newTask("owner-1", "mine", "09:00"))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newTask("owner-2", "theirs", "08:00"))
	require.NoError(t, err)

	tasks, err := repo.ListByOwner(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "mine", tasks[0].Title)
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	repo := inmemory.NewTaskRepository()

	first, err := repo.Create(ctx, newTask("owner-1", "a", "10:00"))
	require.NoError(t, err)
	second, err := repo.Create(ctx, newTask("owner-1", "b", "11:00"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.False(t, first.CreatedAt.IsZero())
}

func TestUpdatePreservesIDOwnerAndStatus(t *testing.T) {
	ctx := context.Background()
	repo := inmemory.NewTaskRepository()

	created, err := repo.Create(ctx, newTask("owner-1", "before", "10:00"))
	require.NoError(t, err)
	require.NoError(t, repo.UpdateStatus(ctx, "owner-1", created.ID, domain.StatusCompleted))

	edit := &domain.Task{
		ID:          created.ID,
		OwnerID:     "owner-1",
		Title:       "after",
		Summary:     "new summary",
		Description: "new description",
		Time:        "11:30",
	}
	require.NoError(t, repo.Update(ctx, edit))

	got, err := repo.GetByID(ctx, "owner-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "owner-1", got.OwnerID)
	assert.Equal(t, "after", got.Title)
	assert.Equal(t, "11:30", got.Time)
	// full-field edits never touch status
	assert.Equal(t, domain.StatusCompleted, got.Status)
}

func TestUpdateWrongOwnerIsNotFound(t *testing.T) {
	ctx := context.Background()
	repo := inmemory.NewTaskRepository()

	created, err := repo.Create(ctx, newTask("owner-1", "mine", "10:00"))
	require.NoError(t, err)

	edit := newTask("owner-2", "stolen", "10:00")
	edit.ID = created.ID
	err = repo.Update(ctx, edit)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := inmemory.NewTaskRepository()

	created, err := repo.Create(ctx, newTask("owner-1", "gone soon", "10:00"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "owner-1", created.ID))

	tasks, err := repo.ListByOwner(ctx, "owner-1")
	require.NoError(t, err)
	assert.Empty(t, tasks)

	// repeated delete reports not found
	err = repo.Delete(ctx, "owner-1", created.ID)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}
