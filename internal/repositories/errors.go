package repositories

import "errors"

var (
	// ErrNotFound is returned when a record or session key does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when a user insert collides with the
	// unique email index.
	ErrDuplicateEmail = errors.New("email already exists")
)
