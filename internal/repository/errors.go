package repository

import (
	"strings"

	apperrors "github.com/welldanyogia/webrana-trivia-backend/internal/errors"
)

// Common repository errors
var (
	ErrNotFound     = apperrors.ErrNotFound
	ErrInvalidInput = apperrors.ErrUnprocessable
)

// isForeignKeyError checks if the error is a foreign key violation
func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "FOREIGN KEY constraint") ||
		strings.Contains(errStr, "violates foreign key constraint") ||
		strings.Contains(errStr, "23503") // PostgreSQL foreign key violation code
}

// escapeLike escapes LIKE wildcards so the term matches literally
func escapeLike(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}
