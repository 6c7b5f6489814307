package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/gabrielgyns/daily-diet-api-ignite/internal/core/domain"
	"github.com/gabrielgyns/daily-diet-api-ignite/internal/core/ports"
)

// uniqueViolation is the Postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByLogin returns the user with the given login, or ErrUserNotFound.
func (r *UserRepository) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	user := &domain.User{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, login, created_at FROM users WHERE login = $1`,
		login,
	).Scan(&user.ID, &user.Name, &user.Login, &user.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by login: %w", err)
	}

	return user, nil
}

// Create inserts a new user row. A unique violation on login maps to
// ErrUserExists, covering the race between the service-level lookup and
// the insert.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, name, login, created_at) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Name, user.Login, user.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return domain.ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

var _ ports.UserRepository = (*UserRepository)(nil)
