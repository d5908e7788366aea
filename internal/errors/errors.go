package errors

import (
	"errors"
	"net/http"
)

// Domain-specific error types
var (
	// ErrNotFound indicates a resource or page was not found
	ErrNotFound = errors.New("resource not found")

	// ErrBadRequest indicates a request with missing or malformed fields
	ErrBadRequest = errors.New("bad request")

	// ErrUnprocessable indicates a well-formed request that cannot be applied
	ErrUnprocessable = errors.New("unprocessable")

	// ErrCategoryNotFound indicates the category was not found
	ErrCategoryNotFound = errors.New("category not found")
)

// User-facing messages, one per status the API returns
const (
	MessageBadRequest       = "Bad request"
	MessageNotFound         = "Resource not found"
	MessageMethodNotAllowed = "Method not allowed"
	MessageUnprocessable    = "Unprocessable"
	MessageTooManyRequests  = "Too many requests"
	MessageInternal         = "Internal server error"
)

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrCategoryNotFound)
}

// IsBadRequest checks if the error is a bad request error
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrBadRequest)
}

// IsUnprocessable checks if the error is an unprocessable error
func IsUnprocessable(err error) bool {
	return errors.Is(err, ErrUnprocessable)
}

// HTTPStatus returns the status code an error should be reported with
func HTTPStatus(err error) int {
	switch {
	case IsNotFound(err):
		return http.StatusNotFound
	case IsBadRequest(err):
		return http.StatusBadRequest
	case IsUnprocessable(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// MessageFor returns the user-facing message for a status code
func MessageFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return MessageBadRequest
	case http.StatusNotFound:
		return MessageNotFound
	case http.StatusMethodNotAllowed:
		return MessageMethodNotAllowed
	case http.StatusUnprocessableEntity:
		return MessageUnprocessable
	case http.StatusTooManyRequests:
		return MessageTooManyRequests
	default:
		return MessageInternal
	}
}
