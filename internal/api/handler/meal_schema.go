package handler

import (
	"fmt"
	"strings"
	"time"

	"github.com/gabrielgyns/daily-diet-api-ignite/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// datetimeLayouts lists the representations a meal datetime may arrive
// in. Parsing tries them in order; the first hit wins.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// flexTime is a time.Time that unmarshals from any coercible date string
// rather than strict RFC3339 only.
type flexTime struct {
	time.Time
}

func (t *flexTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" {
		return nil
	}
	for _, layout := range datetimeLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("datetime %q is not a valid date", s)
}

// --- Request / Response types ---

// createMealRequest requires all four fields. The pointer fields carry a
// "required" tag so presence is what is validated: false and the empty
// description are legal values.
type createMealRequest struct {
	Name        string    `json:"name"        validate:"required"`
	Description *string   `json:"description" validate:"required"`
	Datetime    *flexTime `json:"datetime"    validate:"required"`
	IsInDiet    *bool     `json:"isInDiet"    validate:"required"`
}

// updateMealRequest fields are all optional. An omitted field is not
// preserved on the row: the update writes NULL for it, so callers must
// resend every field they want to keep.
type updateMealRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Datetime    *flexTime `json:"datetime"`
	IsInDiet    *bool     `json:"isInDiet"`
}

// Response-only types owned by the transport layer. These are
// intentionally separate from domain types so the JSON contract is not
// coupled to internal changes.

type mealResponse struct {
	ID          string     `json:"id"`
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Datetime    *time.Time `json:"datetime"`
	IsInDiet    *bool      `json:"isInDiet"`
	UserID      *string    `json:"userId"`
}

type listMealsResponse struct {
	Meals []mealResponse `json:"meals"`
}

type getMealResponse struct {
	Meal *mealResponse `json:"meal"`
}

type mealMetricsResponse struct {
	TotalMealsRegistered int `json:"totalMealsRegistered"`
	TotalMealsInDiet     int `json:"totalMealsInDiet"`
	TotalMealsNotInDiet  int `json:"totalMealsNotInDiet"`
	BestSequenceInDiet   int `json:"bestSequenceInDiet"`
}

func toMealResponse(m *domain.Meal) *mealResponse {
	if m == nil {
		return nil
	}
	return &mealResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Datetime:    m.Datetime,
		IsInDiet:    m.IsInDiet,
		UserID:      m.UserID,
	}
}

func toMealResponses(meals []domain.Meal) []mealResponse {
	out := make([]mealResponse, 0, len(meals))
	for i := range meals {
		out = append(out, *toMealResponse(&meals[i]))
	}
	return out
}
