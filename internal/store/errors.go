package store

import "errors"

var (
	// ErrNotFound is returned when a requested movie does not exist.
	ErrNotFound = errors.New("movie not found")

	// ErrStorageUnavailable wraps database failures that may succeed on retry.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrConstraintViolation wraps rows the database refused to store.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrEmptyKey is returned by key-value stores for an empty key.
	ErrEmptyKey = errors.New("empty key")
)
