package domain

import "errors"

var (
	// ErrNotFound is returned when the target row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrStorageDisabled is returned by every repository method when the
	// service was started without store credentials.
	ErrStorageDisabled = errors.New("storage not configured")
)
