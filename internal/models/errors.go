package models

import "errors"

// Store-level errors returned by repositories.
var (
	// ErrAlreadyExists is returned when a write violates a unique constraint.
	ErrAlreadyExists = errors.New("record already exists")
	// ErrNotExists is returned when a write references a record that is gone.
	ErrNotExists = errors.New("referenced record does not exist")
)
