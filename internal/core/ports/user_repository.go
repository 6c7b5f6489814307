package ports

import (
	"context"

	"github.com/gabrielgyns/daily-diet-api-ignite/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}
