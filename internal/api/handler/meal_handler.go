package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gabrielgyns/daily-diet-api-ignite/internal/api/metrics"
	"github.com/gabrielgyns/daily-diet-api-ignite/internal/core/domain"
	"github.com/gabrielgyns/daily-diet-api-ignite/internal/core/ports"
)

// MealHandler handles HTTP requests for meal operations.
type MealHandler struct {
	service ports.MealService
}

func NewMealHandler(service ports.MealService) *MealHandler {
	return &MealHandler{service: service}
}

// mealID validates the :id path parameter as a UUID. The central error
// handler renders ErrInvalidMealID as a 400.
func mealID(c echo.Context) (string, error) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", domain.ErrInvalidMealID
	}
	return id, nil
}

// Create handles POST /meals.
//
// @Summary      Register a meal
// @Tags         meals
// @Accept       json
// @Param        body  body  createMealRequest  true  "Meal details"
// @Success      201
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /meals [post]
func (h *MealHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createMealRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.service.Create(c.Request().Context(), ports.CreateMealInput{
		UserID:      userID,
		Name:        req.Name,
		Description: *req.Description,
		Datetime:    req.Datetime.Time,
		IsInDiet:    *req.IsInDiet,
	}); err != nil {
		return err
	}

	metrics.MealsCreatedTotal.WithLabelValues(strconv.FormatBool(*req.IsInDiet)).Inc()

	return c.NoContent(http.StatusCreated)
}

// List handles GET /meals.
//
// @Summary      List the caller's meals, most recent first
// @Tags         meals
// @Produce      json
// @Success      200  {object}  listMealsResponse
// @Failure      401  {object}  errorResponse
// @Router       /meals [get]
func (h *MealHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	meals, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listMealsResponse{Meals: toMealResponses(meals)})
}

// Get handles GET /meals/:id.
//
// A miss is not an error: the body carries a null meal with 200. The
// query conjoins id and owner, so "does not exist" and "belongs to
// someone else" are the same absence.
//
// @Summary      Get a single meal
// @Tags         meals
// @Produce      json
// @Param        id  path  string  true  "Meal id (uuid)"
// @Success      200  {object}  getMealResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /meals/{id} [get]
func (h *MealHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	id, err := mealID(c)
	if err != nil {
		return err
	}

	meal, err := h.service.Get(c.Request().Context(), id, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, getMealResponse{Meal: toMealResponse(meal)})
}

// Update handles PUT /meals/:id.
//
// Omitted body fields are written as NULL, not preserved. The 201 status
// mirrors the create path; a non-matching id affects zero rows silently.
//
// @Summary      Update a meal
// @Tags         meals
// @Accept       json
// @Param        id    path  string             true  "Meal id (uuid)"
// @Param        body  body  updateMealRequest  true  "Replacement fields (omitted fields are nulled)"
// @Success      201
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /meals/{id} [put]
func (h *MealHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	id, err := mealID(c)
	if err != nil {
		return err
	}

	var req updateMealRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	var datetime *time.Time
	if req.Datetime != nil {
		datetime = &req.Datetime.Time
	}

	if err := h.service.Update(c.Request().Context(), ports.UpdateMealInput{
		ID:     id,
		UserID: userID,
		Fields: ports.UpdateMealFields{
			Name:        req.Name,
			Description: req.Description,
			Datetime:    datetime,
			IsInDiet:    req.IsInDiet,
		},
	}); err != nil {
		return err
	}

	return c.NoContent(http.StatusCreated)
}

// Delete handles DELETE /meals/:id.
//
// @Summary      Delete a meal
// @Tags         meals
// @Param        id  path  string  true  "Meal id (uuid)"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /meals/{id} [delete]
func (h *MealHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	id, err := mealID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id, userID); err != nil {
		return err
	}

	metrics.MealsDeletedTotal.Inc()

	return c.NoContent(http.StatusNoContent)
}

// Metrics handles GET /meals/metrics.
//
// @Summary      Diet adherence metrics for the caller
// @Tags         meals
// @Produce      json
// @Success      200  {object}  mealMetricsResponse
// @Failure      401  {object}  errorResponse
// @Router       /meals/metrics [get]
func (h *MealHandler) Metrics(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	m, err := h.service.Metrics(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, mealMetricsResponse{
		TotalMealsRegistered: m.TotalMealsRegistered,
		TotalMealsInDiet:     m.TotalMealsInDiet,
		TotalMealsNotInDiet:  m.TotalMealsNotInDiet,
		BestSequenceInDiet:   m.BestSequenceInDiet,
	})
}
