package services

import (
	"context"

	"sixfigure/internal/domain/models"
)

// DocumentService defines read operations for project documents
type DocumentService interface {
	// ListProjectDocuments lists the documents of an owned project, newest first
	ListProjectDocuments(ctx context.Context, projectID, clerkID string) ([]models.ProjectDocument, error)
}
