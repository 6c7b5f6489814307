package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gabrielgyns/daily-diet-api-ignite/internal/api/metrics"
	"github.com/gabrielgyns/daily-diet-api-ignite/internal/api/middleware"
	"github.com/gabrielgyns/daily-diet-api-ignite/internal/core/domain"
	"github.com/gabrielgyns/daily-diet-api-ignite/internal/core/ports"
)

// cookieMaxAge is the validity window of the identity cookie.
const cookieMaxAge = 7 * 24 * time.Hour

// UserHandler handles HTTP requests for user registration.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type registerRequest struct {
	Name  string `json:"name"  validate:"required"`
	Login string `json:"login" validate:"required"`
}

// conflictResponse is the envelope for the taken-login error. It uses a
// "message" key rather than the standard "error" envelope; the mismatch
// is the published contract.
type conflictResponse struct {
	Message string `json:"message"`
}

// Register creates a new user account and attaches the issued identifier
// as the identity cookie, so subsequent requests from the same client
// automatically present it.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Param        body  body  registerRequest  true  "User registration details"
// @Success      201
// @Failure      400  {object}  conflictResponse
// @Router       /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.service.Register(c.Request().Context(), req.Name, req.Login)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return c.JSON(http.StatusBadRequest, conflictResponse{Message: "User already exists"})
		}
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:   middleware.UserIDCookie,
		Value:  user.ID,
		Path:   "/",
		MaxAge: int(cookieMaxAge.Seconds()),
	})

	metrics.UsersRegisteredTotal.Inc()

	return c.NoContent(http.StatusCreated)
}
