// Package usecase implements the business logic for the user directory.
package usecase

import (
	"context"

	"task_backend/internal/feature/auth/domain/entity"
)

// UserDirectoryRepository abstracts read access to the registered users.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserDirectoryRepository interface {
	// ListAll returns every user's identity fields ordered by first name
	// ascending. Credential data is never loaded.
	ListAll(ctx context.Context) ([]entity.User, error)
}

// UserListUsecase provides business logic for the user directory.
type UserListUsecase struct {
	repo UserDirectoryRepository
}

// NewUserListUsecase creates a new UserListUsecase with the given repository.
func NewUserListUsecase(r UserDirectoryRepository) *UserListUsecase {
	return &UserListUsecase{repo: r}
}

// ListUsers returns all registered users for the assignment directory.
func (u *UserListUsecase) ListUsers(ctx context.Context) ([]entity.User, error) {
	// No pagination or filtering; acceptable at current scale.
	return u.repo.ListAll(ctx)
}
