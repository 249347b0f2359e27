// Package validation provides field-level validation errors shared by
// handlers and usecases.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries one or more field-level validation failures.
// Handlers translate it into a 422 response.
type Error struct {
	Fields []FieldError
}

// Error implements the error interface.
func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// NewError builds a validation error for a single field.
func NewError(field, message string) *Error {
	return &Error{Fields: []FieldError{{Field: field, Message: message}}}
}

// FromBindError converts a gin binding error into field-level errors.
// Gin validates binding tags with go-playground/validator, so tag failures
// arrive as validator.ValidationErrors; anything else (malformed JSON, type
// mismatches) is reported against the body as a whole.
func FromBindError(err error) *Error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := &Error{Fields: make([]FieldError, 0, len(verrs))}
		for _, fe := range verrs {
			out.Fields = append(out.Fields, FieldError{
				Field:   strings.ToLower(fe.Field()),
				Message: messageForTag(fe),
			})
		}
		return out
	}
	return &Error{Fields: []FieldError{{Field: "body", Message: "invalid request body"}}}
}

// messageForTag maps a validator tag failure to a client-facing message.
func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", strings.ToLower(fe.Field()))
	case "email":
		return "valid email required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", strings.ToLower(fe.Field()), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", strings.ToLower(fe.Field()))
	}
}
