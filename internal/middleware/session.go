package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "gymplan/internal/errors"
	"gymplan/internal/session"
)

// Context keys set by the session middleware.
const (
	ContextAccountID    = "account_id"
	ContextUsername     = "username"
	ContextSessionToken = "session_token"
)

// Session resolves the session cookie against the store and rejects
// unauthenticated requests with 401. On success the account id, username and
// token are stashed in the request context.
func Session(store session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(session.CookieName)
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Message: "Authentication required"})
			}

			sess, err := store.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{
					Message: "Session lookup failed",
					Err:     err.Error(),
				})
			}
			if sess == nil {
				return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{Message: apperrors.ErrSessionInvalid.Error()})
			}

			c.Set(ContextAccountID, sess.AccountID)
			c.Set(ContextUsername, sess.Username)
			c.Set(ContextSessionToken, sess.Token)
			return next(c)
		}
	}
}
