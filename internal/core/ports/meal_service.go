package ports

import (
	"context"
	"time"

	"github.com/gabrielgyns/daily-diet-api-ignite/internal/core/domain"
)

// CreateMealInput carries all data needed to register a meal. UserID is
// the caller identity injected by the transport layer, never a value the
// client chooses in the body.
type CreateMealInput struct {
	UserID      string
	Name        string
	Description string
	Datetime    time.Time
	IsInDiet    bool
}

// UpdateMealInput carries the target meal id, the caller identity and
// the replacement field values. See UpdateMealFields for the nil
// semantics.
type UpdateMealInput struct {
	ID     string
	UserID string
	Fields UpdateMealFields
}

// MealService defines use-case operations for meals. Every operation is
// scoped to the caller identity passed in; ownership filtering is the
// sole authorization mechanism.
type MealService interface {
	Create(ctx context.Context, input CreateMealInput) error
	List(ctx context.Context, userID string) ([]domain.Meal, error)
	Get(ctx context.Context, id, userID string) (*domain.Meal, error)
	Update(ctx context.Context, input UpdateMealInput) error
	Delete(ctx context.Context, id, userID string) error
	Metrics(ctx context.Context, userID string) (*domain.MealMetrics, error)
}
