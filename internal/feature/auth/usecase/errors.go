// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with
	// an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when a login fails. It is deliberately
	// the same for an unknown email and a wrong password so callers cannot
	// probe which addresses are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError reports malformed registration or login input. It is a
// distinct type so the transport layer can map it to 400 instead of 401.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(msg string) error {
	return &ValidationError{Message: msg}
}
