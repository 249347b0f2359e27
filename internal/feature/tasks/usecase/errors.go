// Package usecase implements the business logic for the tasks feature.
package usecase

import "errors"

var (
	// ErrTaskNotFound is returned when no task exists with the given ID.
	ErrTaskNotFound = errors.New("task not found")
)
