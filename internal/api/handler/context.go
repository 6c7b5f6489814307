package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gabrielgyns/daily-diet-api-ignite/internal/api/middleware"
)

// ctxUserID extracts the caller identifier injected by the RequireUser
// middleware. A missing value means the route was wired without the gate;
// fail closed with 401 rather than running the handler unscoped.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.ContextUserID).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Action Unauthorized")
	}
	return userID, nil
}
