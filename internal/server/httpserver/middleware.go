package httpserver

import (
	"strings"

	"github.com/dmitrijs2005/bookstore/internal/common"
	"github.com/dmitrijs2005/bookstore/internal/server/auth"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// BearerAuth validates the Authorization header when present and attaches
// the result to the request context. Requests without a header pass through
// unauthenticated; protected resolvers decide whether that is acceptable,
// so public reads and auth mutations keep working without a token.
func BearerAuth(validator *auth.TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(c)
			}

			ctx := c.Request().Context()
			if !strings.HasPrefix(header, bearerPrefix) {
				ctx = auth.ContextWithError(ctx, common.ErrInvalidToken)
			} else if identity, err := validator.Validate(strings.TrimPrefix(header, bearerPrefix)); err != nil {
				ctx = auth.ContextWithError(ctx, err)
			} else {
				ctx = auth.ContextWithIdentity(ctx, identity)
			}

			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}
