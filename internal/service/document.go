package service

import (
	"context"
	"log/slog"

	"sixfigure/internal/domain/models"
	"sixfigure/internal/domain/repositories"
	"sixfigure/internal/domain/services"
)

// documentService implements the DocumentService interface
type documentService struct {
	docRepo     repositories.DocumentRepository
	projectRepo repositories.ProjectRepository
	logger      *slog.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(
	docRepo repositories.DocumentRepository,
	projectRepo repositories.ProjectRepository,
	logger *slog.Logger,
) services.DocumentService {
	return &documentService{
		docRepo:     docRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// ListProjectDocuments lists the documents of an owned project, newest first
func (s *documentService) ListProjectDocuments(ctx context.Context, projectID, clerkID string) ([]models.ProjectDocument, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID, clerkID); err != nil {
		return nil, err
	}

	return s.docRepo.ListByProject(ctx, projectID, clerkID)
}
