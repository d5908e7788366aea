package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	apperrors "github.com/welldanyogia/webrana-trivia-backend/internal/errors"
)

// StatusResponse is the body of mutations that return no data
type StatusResponse struct {
	Success bool  `json:"success"`
	Deleted *uint `json:"deleted,omitempty"`
	Created *uint `json:"created,omitempty"`
}

// ErrorResponse represents an error API response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// Success returns a 200 response with the given body
func Success(c echo.Context, body interface{}) error {
	return c.JSON(http.StatusOK, body)
}

// Deleted returns a 200 response naming the deleted id
func Deleted(c echo.Context, id uint) error {
	return c.JSON(http.StatusOK, StatusResponse{
		Success: true,
		Deleted: &id,
	})
}

// Created returns a 200 response naming the created id
func Created(c echo.Context, id uint) error {
	return c.JSON(http.StatusOK, StatusResponse{
		Success: true,
		Created: &id,
	})
}

// Fail returns the standard error body for a status code
func Fail(c echo.Context, status int) error {
	return c.JSON(status, ErrorResponse{
		Success: false,
		Error:   status,
		Message: apperrors.MessageFor(status),
	})
}

// Error returns an error response with the status mapped from err.
// Server errors are logged since the body hides them.
func Error(c echo.Context, err error) error {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			slog.String("method", c.Request().Method),
			slog.String("path", c.Request().URL.Path),
			slog.String("error", err.Error()),
		)
	}
	return Fail(c, status)
}

// BadRequest returns a 400 Bad Request response
func BadRequest(c echo.Context) error {
	return Fail(c, http.StatusBadRequest)
}

// NotFound returns a 404 Not Found response
func NotFound(c echo.Context) error {
	return Fail(c, http.StatusNotFound)
}

// HTTPErrorHandler renders errors that escape handlers (unknown routes,
// wrong methods, middleware rejections, recovered panics) with the
// standard error body
func HTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := apperrors.HTTPStatus(err)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
		}

		if status >= http.StatusInternalServerError && logger != nil {
			logger.Error("request failed",
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Int("status", status),
				slog.String("error", err.Error()),
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = Fail(c, status)
		}
		if writeErr != nil && logger != nil {
			logger.Error("failed to write error response", slog.String("error", writeErr.Error()))
		}
	}
}
