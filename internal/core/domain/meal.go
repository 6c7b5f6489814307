package domain

import (
	"errors"
	"time"
)

var ErrInvalidMealID = errors.New("invalid meal id")

// Meal is the core aggregate root. The four mutable fields are pointers
// because the storage columns are nullable: an update writes NULL for
// every field omitted from the request, so a persisted meal can carry
// absent values after a partial update.
type Meal struct {
	ID          string     `json:"id"`
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Datetime    *time.Time `json:"datetime"`
	IsInDiet    *bool      `json:"isInDiet"`
	UserID      *string    `json:"userId"`
}

// InDiet reports whether the meal counts toward the diet. A NULL flag
// counts as not-in-diet and breaks streaks.
func (m *Meal) InDiet() bool {
	return m.IsInDiet != nil && *m.IsInDiet
}

// MealMetrics summarises a user's diet adherence.
type MealMetrics struct {
	TotalMealsRegistered int `json:"totalMealsRegistered"`
	TotalMealsInDiet     int `json:"totalMealsInDiet"`
	TotalMealsNotInDiet  int `json:"totalMealsNotInDiet"`
	BestSequenceInDiet   int `json:"bestSequenceInDiet"`
}

// ComputeMetrics derives adherence metrics from meals ordered by
// ascending datetime. BestSequenceInDiet is the length of the longest
// contiguous run of in-diet meals: a running counter is incremented on
// each in-diet meal and reset on anything else, tracking the maximum
// seen. An empty slice yields all zeros.
func ComputeMetrics(meals []Meal) MealMetrics {
	var m MealMetrics
	m.TotalMealsRegistered = len(meals)

	current := 0
	for i := range meals {
		if meals[i].InDiet() {
			m.TotalMealsInDiet++
			current++
			if current > m.BestSequenceInDiet {
				m.BestSequenceInDiet = current
			}
		} else {
			m.TotalMealsNotInDiet++
			current = 0
		}
	}

	return m
}
