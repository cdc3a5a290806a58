// Package common defines sentinel errors and small helpers shared across
// the server layers. Callers should match these values with errors.Is.
package common

import "errors"

var (
	// repository-level errors
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// service-level errors
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// auth errors
	ErrInvalidToken = errors.New("invalid token")

	// reset-token lifecycle; deliberately a single value for wrong,
	// expired and already consumed tokens
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
)
