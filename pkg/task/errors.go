package task

import (
	"errors"
	"fmt"
)

var (
	ErrIDAlreadyExists = errors.New("task with the given ID already exists")
	ErrNotFound        = errors.New("not found")
)

// ValidationError reports caller input that cannot become a canonical task.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
