package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskmaster/taskmaster/domain"
	"github.com/taskmaster/taskmaster/repository"
)

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a Postgres-backed implementation of TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) repository.TaskRepository {
	return &taskRepository{pool: pool}
}

func (r *taskRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Task, error) {
	// time_of_day is a zero-padded HH:MM string, so lexicographic order is
	// chronological order.
	const query = `
	SELECT id, owner_id, title, summary, description, time_of_day, status, created_at, updated_at
	FROM tasks
	WHERE owner_id = $1
	ORDER BY time_of_day ASC, id ASC
	`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) GetByID(ctx context.Context, ownerID string, id int64) (*domain.Task, error) {
	const query = `
	SELECT id, owner_id, title, summary, description, time_of_day, status, created_at, updated_at
	FROM tasks
	WHERE id = $1 AND owner_id = $2
	`
	row := r.pool.QueryRow(ctx, query, id, ownerID)
	return scanTask(row)
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO tasks (owner_id, title, summary, description, time_of_day, status)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, created_at, updated_at
	`
	if err := r.pool.QueryRow(ctx, query,
		task.OwnerID,
		task.Title,
		task.Summary,
		task.Description,
		task.Time,
		int(task.Status),
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt); err != nil {
		return nil, err
	}

	return task, nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE tasks
	SET title = $3,
		summary = $4,
		description = $5,
		time_of_day = $6,
		updated_at = NOW()
	WHERE id = $1 AND owner_id = $2
	RETURNING status, updated_at
	`
	var status int
	if err := r.pool.QueryRow(ctx, query,
		task.ID,
		task.OwnerID,
		task.Title,
		task.Summary,
		task.Description,
		task.Time,
	).Scan(&status, &task.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrTaskNotFound
		}
		return err
	}
	task.Status = domain.Status(status)

	return nil
}

func (r *taskRepository) UpdateStatus(ctx context.Context, ownerID string, id int64, status domain.Status) error {
	const query = `
	UPDATE tasks
	SET status = $3, updated_at = NOW()
	WHERE id = $1 AND owner_id = $2
	`
	tag, err := r.pool.Exec(ctx, query, id, ownerID, int(status))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *taskRepository) Delete(ctx context.Context, ownerID string, id int64) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND owner_id = $2`
	tag, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func scanTask(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Task, error) {
	var task domain.Task
	var status int

	if err := row.Scan(
		&task.ID,
		&task.OwnerID,
		&task.Title,
		&task.Summary,
		&task.Description,
		&task.Time,
		&status,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}

	task.Status = domain.Status(status)
	return &task, nil
}
