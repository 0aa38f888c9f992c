package domain

import "errors"

var (
	// ErrUnauthorized indicates missing or invalid credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound indicates the requested chat or message does not exist.
	ErrNotFound = errors.New("not found")
)
