package domain

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates a malformed record or filter
	ErrInvalidInput = errors.New("invalid input")

	// ErrReadOnly is returned by backends that cannot accept writes
	ErrReadOnly = errors.New("store is read-only")

	// ErrUnauthorized indicates missing or bad credentials
	ErrUnauthorized = errors.New("unauthorized")
)
