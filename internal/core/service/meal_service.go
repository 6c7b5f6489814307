package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gabrielgyns/daily-diet-api-ignite/internal/core/domain"
	"github.com/gabrielgyns/daily-diet-api-ignite/internal/core/ports"
)

// MealService implements the meal lifecycle and metrics. Every storage
// access is conjoined with the caller's user ID; there are no roles.
type MealService struct {
	repo   ports.MealRepository
	logger zerolog.Logger
}

func NewMealService(repo ports.MealRepository, logger zerolog.Logger) *MealService {
	return &MealService{repo: repo, logger: logger}
}

// Create persists a new meal owned by the caller.
func (s *MealService) Create(ctx context.Context, input ports.CreateMealInput) error {
	meal := &domain.Meal{
		ID:          uuid.NewString(),
		Name:        &input.Name,
		Description: &input.Description,
		Datetime:    &input.Datetime,
		IsInDiet:    &input.IsInDiet,
		UserID:      &input.UserID,
	}

	if err := s.repo.Create(ctx, meal); err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create meal")
		return err
	}

	s.logger.Info().Str("meal_id", meal.ID).Str("user_id", input.UserID).Bool("in_diet", input.IsInDiet).Msg("meal created")
	return nil
}

// List returns all of the caller's meals, most recent first.
func (s *MealService) List(ctx context.Context, userID string) ([]domain.Meal, error) {
	meals, err := s.repo.ListByUser(ctx, userID, true)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to list meals")
		return nil, err
	}
	return meals, nil
}

// Get returns the caller's meal with the given id, or nil when no row
// matches both the id and the caller.
func (s *MealService) Get(ctx context.Context, id, userID string) (*domain.Meal, error) {
	meal, err := s.repo.FindByID(ctx, id, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("meal_id", id).Str("user_id", userID).Msg("failed to get meal")
		return nil, err
	}
	return meal, nil
}

// Update rewrites the mutable columns of the caller's meal. Fields left
// nil in the input are written as NULL, not preserved. A non-matching
// id+owner pair affects zero rows silently.
func (s *MealService) Update(ctx context.Context, input ports.UpdateMealInput) error {
	if err := s.repo.Update(ctx, input.ID, input.UserID, input.Fields); err != nil {
		s.logger.Error().Err(err).Str("meal_id", input.ID).Str("user_id", input.UserID).Msg("failed to update meal")
		return err
	}
	return nil
}

// Delete removes the caller's meal. Deleting an id that does not exist
// (or belongs to someone else) is indistinguishable from success.
func (s *MealService) Delete(ctx context.Context, id, userID string) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		s.logger.Error().Err(err).Str("meal_id", id).Str("user_id", userID).Msg("failed to delete meal")
		return err
	}
	return nil
}

// Metrics fetches the caller's meals in ascending datetime order and
// computes adherence totals plus the best in-diet streak.
func (s *MealService) Metrics(ctx context.Context, userID string) (*domain.MealMetrics, error) {
	meals, err := s.repo.ListByUser(ctx, userID, false)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to load meals for metrics")
		return nil, err
	}

	m := domain.ComputeMetrics(meals)
	return &m, nil
}

var _ ports.MealService = (*MealService)(nil)
