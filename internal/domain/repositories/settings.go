package repositories

import (
	"context"

	"sixfigure/internal/domain/models"
)

// SettingsRepository defines data access operations for project settings.
// Settings carry no clerk_id column of their own; callers must verify project
// ownership before touching a settings row (see ProjectRepository.GetByID).
type SettingsRepository interface {
	// Create inserts the settings row for a project
	Create(ctx context.Context, settings *models.ProjectSettings) error

	// GetByProjectID retrieves the settings row for a project.
	// Returns ErrNotFound if no row exists.
	GetByProjectID(ctx context.Context, projectID string) (*models.ProjectSettings, error)

	// Replace overwrites the full settings row for a project (no partial update).
	// Returns ErrNotFound if no row exists for the project.
	Replace(ctx context.Context, settings *models.ProjectSettings) error
}
