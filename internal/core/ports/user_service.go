package ports

import (
	"context"

	"github.com/gabrielgyns/daily-diet-api-ignite/internal/core/domain"
)

type UserService interface {
	Register(ctx context.Context, name, login string) (*domain.User, error)
}
