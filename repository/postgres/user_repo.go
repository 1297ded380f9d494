package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskmaster/taskmaster/domain"
	"github.com/taskmaster/taskmaster/repository"
)

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository instantiates a Postgres-backed user repository.
func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const query = `
	SELECT id, email, created_at, updated_at
	FROM users
	WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var user domain.User
	if err := row.Scan(&user.ID, &user.Email, &user.CreatedAt, &user.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, string, error) {
	const query = `
	SELECT id, email, password_hash, created_at, updated_at
	FROM users
	WHERE email = $1
	`
	row := r.pool.QueryRow(ctx, query, email)

	var (
		user domain.User
		hash string
	)
	if err := row.Scan(&user.ID, &user.Email, &hash, &user.CreatedAt, &user.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", domain.ErrUserNotFound
		}
		return nil, "", err
	}
	return &user, hash, nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User, passwordHash string) error {
	if user == nil {
		return domain.ErrInvalidPayload
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO users (id, email, password_hash)
	VALUES ($1, $2, $3)
	RETURNING created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query, user.ID, user.Email, passwordHash).
		Scan(&user.CreatedAt, &user.UpdatedAt)
}
