package repositories

import (
	"context"

	"sixfigure/internal/domain/models"
)

// UserRepository defines data access operations for provisioned users
type UserRepository interface {
	// GetByClerkID retrieves a user by Clerk ID.
	// Returns (nil, nil) when no user exists - absence is not an error here.
	GetByClerkID(ctx context.Context, clerkID string) (*models.User, error)

	// Create inserts a new user keyed by Clerk ID.
	// The clerk_id column carries a unique constraint; a concurrent insert of
	// the same ID surfaces as a ConflictError, which callers must treat as
	// "already exists", not a failure.
	Create(ctx context.Context, user *models.User) error
}
