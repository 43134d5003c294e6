package services

import "errors"

// Error variables
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateAccount   = errors.New("account already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("password incorrect")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrAlreadyFollowing   = errors.New("user already followed")
	ErrNotFollowing       = errors.New("user not followed")
)

// ValidationError reports the first field of an input that failed validation.
// It matches ErrInvalidInput with errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
