package service

import (
	"errors"
	"fmt"
)

// ErrNotLoggedIn is returned when an operation needs a signed-in viewer.
var ErrNotLoggedIn = errors.New("not logged in: run 'dompet login' first")

// ValidationError is a local input problem. It is reported before any request
// is sent.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// fromValidator wraps a validation package error as a ValidationError.
func fromValidator(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}
