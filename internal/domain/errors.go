package domain

import "errors"

// Persistence-level errors returned by repositories. Services translate them
// into their own sentinels before they reach a handler.
var (
	ErrDuplicateEntry = errors.New("user email already stored")
	ErrNotFound       = errors.New("user not found in storage")
	ErrNoRowsAffected = errors.New("user row was not updated")
)
