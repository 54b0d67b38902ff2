package services

import (
	"context"

	"sixfigure/internal/domain/models"
)

// CreateProjectRequest represents a request to create a project
type CreateProjectRequest struct {
	ClerkID     string `json:"clerk_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProjectService defines business logic operations for projects
type ProjectService interface {
	// CreateProject creates a new project together with its default settings
	// as one logical unit. If the settings insert fails the project row is
	// compensated away and a DependentCreationError is returned.
	CreateProject(ctx context.Context, req *CreateProjectRequest) (*models.Project, error)

	// GetProject retrieves a project by ID
	GetProject(ctx context.Context, id, clerkID string) (*models.Project, error)

	// ListProjects retrieves all projects for a user
	ListProjects(ctx context.Context, clerkID string) ([]models.Project, error)

	// DeleteProject deletes a project and returns its prior representation.
	// Dependent rows are removed by the store's FK cascades.
	DeleteProject(ctx context.Context, id, clerkID string) (*models.Project, error)
}
