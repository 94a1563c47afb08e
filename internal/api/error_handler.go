package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/inkpress/blog-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// nullResponse renders {"data": null}.
type nullResponse struct {
	Data any `json:"data"`
}

// opaqueErrors never reach the client as such. Callers see the same null
// result whether they are anonymous, lack a role, hit a missing resource or
// ask for a negative page.
var opaqueErrors = []error{
	domain.ErrUnauthenticated,
	domain.ErrForbidden,
	domain.ErrInvalidCredentials,
	domain.ErrPostNotFound,
	domain.ErrUserNotFound,
	domain.ErrInvalidPage,
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Renders denials and missing resources as 200 {"data": null}.
//   - Keeps the status code of echo's own HTTP errors.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		for _, target := range opaqueErrors {
			if errors.Is(err, target) {
				log.Debug().
					Err(err).
					Str("method", c.Request().Method).
					Str("path", c.Path()).
					Msg("request denied")
				_ = c.JSON(http.StatusOK, nullResponse{})
				return
			}
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
