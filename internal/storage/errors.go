// Package storage declares the errors every voter store implementation
// returns. Services translate these into client-facing errors; raw store
// errors never reach the API layer.
package storage

import "errors"

var (
	// ErrNotFound is returned when no record exists for the given key.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when a save would violate the email
	// uniqueness constraint.
	ErrDuplicateEmail = errors.New("duplicate email")
)
