// Package usecase implements the business logic for the tasks feature.
package usecase

import "errors"

// ErrTaskNotFound is returned when a task does not exist or does not belong
// to the caller. The two cases are indistinguishable on purpose: revealing
// that a task exists under another owner would leak information.
var ErrTaskNotFound = errors.New("task not found")

// ValidationError reports a malformed task payload or filter.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(msg string) error {
	return &ValidationError{Message: msg}
}
