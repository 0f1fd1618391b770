package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors discriminated by the HTTP layer via errors.Is.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries field-level detail and always means no write
// happened.
type ValidationError struct {
	Details []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e.Details))

	for _, d := range e.Details {
		parts = append(parts, fmt.Sprintf("%s: %s", d.Field, d.Message))
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

func Validation(details ...FieldError) *ValidationError {
	return &ValidationError{Details: details}
}

func Field(field, message string) FieldError {
	return FieldError{Field: field, Message: message}
}

// Required is the standard detail for a missing mandatory field.
func Required(field string) FieldError {
	return FieldError{Field: field, Message: field + " is required"}
}
