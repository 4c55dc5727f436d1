package ports

import (
	"context"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
// Username and email uniqueness is enforced by the storage layer; Add
// surfaces violations as duplicate identity errors.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByUsername retrieves a user aggregate by its login name.
	// Used during authentication.
	GetByUsername(ctx context.Context, username string) (*user.User, error)
}
