package ports

import (
	"context"
	"time"

	"github.com/gabrielgyns/daily-diet-api-ignite/internal/core/domain"
)

// UpdateMealFields carries the new column values for an update. Nil
// fields are not skipped: the repository writes NULL for every nil
// pointer, so a partial request overwrites the omitted columns (callers
// must resend all fields to keep them).
type UpdateMealFields struct {
	Name        *string
	Description *string
	Datetime    *time.Time
	IsInDiet    *bool
}

// MealRepository defines persistence operations for meals. Every query
// that takes a userID conjoins it with the meal id, so a row is only
// visible, mutable, or deletable through its owning user.
type MealRepository interface {
	Create(ctx context.Context, meal *domain.Meal) error
	// ListByUser returns all meals owned by userID ordered by datetime
	// descending when desc is true, ascending otherwise.
	ListByUser(ctx context.Context, userID string, desc bool) ([]domain.Meal, error)
	// FindByID returns the meal matching both id and userID, or nil when
	// no such row exists ("missing" and "not yours" are not distinguished).
	FindByID(ctx context.Context, id, userID string) (*domain.Meal, error)
	// Update rewrites the four mutable columns of the row matching id and
	// userID. Zero rows affected is silent.
	Update(ctx context.Context, id, userID string, fields UpdateMealFields) error
	// Delete removes the row matching id and userID. Zero rows affected
	// is silent.
	Delete(ctx context.Context, id, userID string) error
}
