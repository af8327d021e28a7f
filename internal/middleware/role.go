package middleware

import (
	"github.com/labstack/echo/v4"

	apperrors "github.com/bralash/rants-api/internal/errors"
	"github.com/bralash/rants-api/internal/model"
)

// RequireRole gates a route group to the given allow-set. It must be mounted
// after Authenticate; a request that reaches it without an authenticated
// user is rejected with 401, and a user outside the allow-set gets 403.
// Absence of a matching role is always Forbidden, never silently allowed.
func RequireRole(allowed ...model.Role) echo.MiddlewareFunc {
	allowSet := make(map[model.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowSet[role] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return apperrors.ErrUnauthenticated
			}
			if _, ok := allowSet[user.Role]; !ok {
				return apperrors.ErrForbidden
			}
			return next(c)
		}
	}
}
