package middleware

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ContextKeyToken is the echo context key holding the bearer token of the
// current request. It is absent for anonymous requests.
const ContextKeyToken = "session_token"

// Session extracts the bearer token from the Authorization header and stores
// it in the context. Requests without the header pass through anonymously;
// the token is resolved by the core, not here.
func Session() echo.MiddlewareFunc {
	v := validator.New()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid authorization header")
			}

			token := strings.TrimSpace(parts[1])
			if err := v.Var(token, "len=118,hexadecimal"); err != nil {
				return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid session token")
			}

			c.Set(ContextKeyToken, token)

			return next(c)
		}
	}
}
