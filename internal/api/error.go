package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Message string `json:"error"`
}

var (
	InternalServerError = ErrorResponse{"Internal server error"} //nolint:gochecknoglobals // constant response body
	BadRequestError     = ErrorResponse{"Bad request"}           //nolint:gochecknoglobals // constant response body
)

// HTTPErrorHandler turns every error escaping a handler into an
// ErrorResponse body. Internal errors are masked with a constant
// message so details only reach the log.
func HTTPErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		ctx := c.Request().Context()
		log.ErrorContext(ctx, "request failed", "error", err)

		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		body := InternalServerError

		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			code = echoErr.Code
			if message, ok := echoErr.Message.(string); ok && message != "" && code != http.StatusInternalServerError {
				body = ErrorResponse{Message: message}
			}
		}

		if wErr := c.JSON(code, body); wErr != nil {
			log.ErrorContext(ctx, "failed to write error response", "error", wErr)
		}
	}
}
