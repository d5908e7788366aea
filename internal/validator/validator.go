// Package validator provides request validation, pagination and free
// text checks for the trivia API.
package validator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	apperrors "github.com/welldanyogia/webrana-trivia-backend/internal/errors"
)

// Validation errors
var (
	ErrEmptyInput   = fmt.Errorf("input cannot be empty: %w", apperrors.ErrBadRequest)
	ErrInputTooLong = fmt.Errorf("input exceeds maximum length: %w", apperrors.ErrBadRequest)
	ErrInvalidPage  = fmt.Errorf("page must be an integer: %w", apperrors.ErrBadRequest)
)

// MaxTextLength bounds question, answer and search term text
const MaxTextLength = 1000

// RequestValidator validates tagged request structs. It satisfies
// echo.Validator so handlers can call c.Validate.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a RequestValidator
func New() *RequestValidator {
	return &RequestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks the `validate` tags of a struct
func (v *RequestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("field %s failed %q: %w: %w", verrs[0].Field(), verrs[0].Tag(), apperrors.ErrBadRequest, err)
		}
		return fmt.Errorf("%w: %w", apperrors.ErrBadRequest, err)
	}
	return nil
}

// QuestionsPerPage is the fixed page size of question listings
const QuestionsPerPage = 10

// ParsePage parses the 1-indexed page query parameter. An empty value means
// the first page. Values below 1 are returned as-is and select no rows.
func ParsePage(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrInvalidPage
	}
	return page, nil
}

// PageBounds returns the limit and offset selecting
// questions[(page-1)*QuestionsPerPage : page*QuestionsPerPage]
func PageBounds(page int) (limit, offset int) {
	if page < 1 {
		return 0, 0
	}
	return QuestionsPerPage, (page - 1) * QuestionsPerPage
}

// ValidateText rejects free text that is blank or longer than
// MaxTextLength runes. The text itself is stored as submitted.
func ValidateText(input string) error {
	if strings.TrimSpace(input) == "" {
		return ErrEmptyInput
	}
	if utf8.RuneCountInString(input) > MaxTextLength {
		return ErrInputTooLong
	}
	return nil
}
