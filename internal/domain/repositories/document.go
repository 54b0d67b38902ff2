package repositories

import (
	"context"

	"sixfigure/internal/domain/models"
)

// DocumentRepository defines read access to project documents.
// Uploads and deletes belong to the ingestion worker, not this service.
type DocumentRepository interface {
	// ListByProject retrieves a project's documents for a user,
	// ordered by created_at DESC. Filtered by both project ID and owner.
	ListByProject(ctx context.Context, projectID, clerkID string) ([]models.ProjectDocument, error)
}
