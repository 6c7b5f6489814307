package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gabrielgyns/daily-diet-api-ignite/internal/core/domain"
	"github.com/gabrielgyns/daily-diet-api-ignite/internal/core/ports"
)

// UserService implements registration. Identifier issuance lives here:
// no other component mints user IDs.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Register creates a new user. A taken login fails with ErrUserExists
// and performs no mutation.
func (s *UserService) Register(ctx context.Context, name, login string) (*domain.User, error) {
	existing, err := s.repo.FindByLogin(ctx, login)
	if err != nil && err != domain.ErrUserNotFound {
		s.logger.Error().Err(err).Str("login", login).Msg("failed to look up login")
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserExists
	}

	user := &domain.User{
		ID:        uuid.NewString(),
		Name:      name,
		Login:     login,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("login", login).Msg("failed to create user")
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("login", login).Msg("user registered")
	return user, nil
}

var _ ports.UserService = (*UserService)(nil)
