package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// UserIDCookie is the cookie carrying the opaque caller identifier. It is
// set once at registration and read on every meal request.
const UserIDCookie = "userId"

// ContextUserID is the echo context key the caller identifier is stored
// under once the gate has passed.
const ContextUserID = "userID"

// RequireUser rejects requests that do not present the identity cookie
// and injects its value into the context otherwise. This is a capability
// check, not authentication: the value is never verified against the
// user table, any non-empty identifier is treated as that user.
func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(UserIDCookie)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Action Unauthorized"})
			}

			c.Set(ContextUserID, cookie.Value)

			return next(c)
		}
	}
}
