package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "github.com/bralash/rants-api/internal/errors"
	"github.com/bralash/rants-api/internal/model"
)

// userContextKey is where the authenticated user lives on the echo context.
const userContextKey = "current_user"

// tokenContextKey is where the presented plaintext token lives, so logout
// can revoke exactly the credential used for the current request.
const tokenContextKey = "current_token"

// TokenValidator is the slice of the token service the middleware needs.
type TokenValidator interface {
	Validate(ctx context.Context, plaintext string) (*model.User, error)
}

// Authenticate resolves the bearer token to a user and stores both on the
// context. Requests without a valid token are rejected with 401 before any
// downstream middleware or handler runs.
func Authenticate(tokens TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c)
			if !ok {
				return apperrors.ErrUnauthenticated
			}

			user, err := tokens.Validate(c.Request().Context(), token)
			if err != nil {
				return err
			}

			c.Set(userContextKey, user)
			c.Set(tokenContextKey, token)
			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user set by Authenticate.
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(userContextKey).(*model.User)
	return user, ok
}

// CurrentToken returns the plaintext token presented on this request.
func CurrentToken(c echo.Context) (string, bool) {
	token, ok := c.Get(tokenContextKey).(string)
	return token, ok
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}
