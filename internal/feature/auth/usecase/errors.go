// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when email or password is wrong.
	// Lookup failures and password mismatches share this error so responses
	// cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
