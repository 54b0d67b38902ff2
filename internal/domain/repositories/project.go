package repositories

import (
	"context"

	"sixfigure/internal/domain/models"
)

// ProjectRepository defines data access operations for projects.
// Every read and mutation takes the owning Clerk ID as a mandatory filter;
// tenant isolation is enforced here, not by a separate permission layer.
type ProjectRepository interface {
	// Create creates a new project and returns it with generated ID and timestamps
	Create(ctx context.Context, project *models.Project) error

	// GetByID retrieves a project by ID, filtered by owner.
	// Returns ErrNotFound both when the ID does not exist and when it belongs
	// to another user - the two cases must be indistinguishable.
	GetByID(ctx context.Context, id, clerkID string) (*models.Project, error)

	// List retrieves all projects for a user, ordered by created_at DESC
	List(ctx context.Context, clerkID string) ([]models.Project, error)

	// Delete deletes a project, filtered by owner. The store cascades the
	// delete to settings, documents, and chats via FK constraints.
	Delete(ctx context.Context, id, clerkID string) error
}
