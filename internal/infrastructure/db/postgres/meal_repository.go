package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gabrielgyns/daily-diet-api-ignite/internal/core/domain"
	"github.com/gabrielgyns/daily-diet-api-ignite/internal/core/ports"
)

type MealRepository struct {
	db *sql.DB
}

func NewMealRepository(db *sql.DB) *MealRepository {
	return &MealRepository{db: db}
}

const mealColumns = `id, name, description, datetime, is_in_diet, user_id`

// Create inserts a new meal row.
func (r *MealRepository) Create(ctx context.Context, meal *domain.Meal) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO meals (id, name, description, datetime, is_in_diet, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		meal.ID, meal.Name, meal.Description, meal.Datetime, meal.IsInDiet, meal.UserID,
	)
	if err != nil {
		return fmt.Errorf("insert meal: %w", err)
	}

	return nil
}

// ListByUser returns all meals owned by userID ordered by datetime,
// descending when desc is true. NULLs sort last either way so rows with
// a cleared datetime do not interleave with dated ones.
func (r *MealRepository) ListByUser(ctx context.Context, userID string, desc bool) ([]domain.Meal, error) {
	order := `datetime ASC NULLS LAST`
	if desc {
		order = `datetime DESC NULLS LAST`
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+mealColumns+` FROM meals WHERE user_id = $1 ORDER BY `+order,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	defer rows.Close()

	meals := []domain.Meal{}
	for rows.Next() {
		var meal domain.Meal
		if err := rows.Scan(&meal.ID, &meal.Name, &meal.Description, &meal.Datetime, &meal.IsInDiet, &meal.UserID); err != nil {
			return nil, fmt.Errorf("scan meal: %w", err)
		}
		meals = append(meals, meal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}

	return meals, nil
}

// FindByID returns the meal matching both id and userID, or nil when no
// such row exists. The query conjoins ownership, so "missing" and "not
// yours" are the same absence.
func (r *MealRepository) FindByID(ctx context.Context, id, userID string) (*domain.Meal, error) {
	meal := &domain.Meal{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+mealColumns+` FROM meals WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&meal.ID, &meal.Name, &meal.Description, &meal.Datetime, &meal.IsInDiet, &meal.UserID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find meal: %w", err)
	}

	return meal, nil
}

// Update rewrites all four mutable columns of the row matching id and
// userID. Nil fields become NULL; a non-matching pair affects zero rows
// without error.
func (r *MealRepository) Update(ctx context.Context, id, userID string, fields ports.UpdateMealFields) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE meals SET name = $1, description = $2, datetime = $3, is_in_diet = $4
		 WHERE id = $5 AND user_id = $6`,
		fields.Name, fields.Description, fields.Datetime, fields.IsInDiet, id, userID,
	)
	if err != nil {
		return fmt.Errorf("update meal: %w", err)
	}

	return nil
}

// Delete removes the row matching id and userID. Zero rows affected is
// silent.
func (r *MealRepository) Delete(ctx context.Context, id, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM meals WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}

	return nil
}

var _ ports.MealRepository = (*MealRepository)(nil)
