package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"sixfigure/internal/config"
	"sixfigure/internal/defaults"
	"sixfigure/internal/domain"
	"sixfigure/internal/domain/models"
	"sixfigure/internal/domain/repositories"
	"sixfigure/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// projectService implements the ProjectService interface
type projectService struct {
	projectRepo  repositories.ProjectRepository
	settingsRepo repositories.SettingsRepository
	registry     *defaults.Registry
	logger       *slog.Logger
}

// NewProjectService creates a new project service
func NewProjectService(
	projectRepo repositories.ProjectRepository,
	settingsRepo repositories.SettingsRepository,
	registry *defaults.Registry,
	logger *slog.Logger,
) services.ProjectService {
	return &projectService{
		projectRepo:  projectRepo,
		settingsRepo: settingsRepo,
		registry:     registry,
		logger:       logger,
	}
}

// CreateProject creates a project together with its default settings.
//
// The store has no cross-table transaction for this pair, so the pairing is
// a manual saga: insert the project, insert its settings, and on a settings
// failure delete the project row just created. A process crash between the
// two inserts can still leave a settings-less project behind; that window is
// a documented limitation, not something this method can close.
func (s *projectService) CreateProject(ctx context.Context, req *services.CreateProjectRequest) (*models.Project, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	project := &models.Project{
		ClerkID:     req.ClerkID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	settings, err := s.registry.SettingsFor(project.ID)
	if err != nil {
		// Registry failures are configuration bugs, but the project row is
		// already in; compensate the same way as a settings insert failure.
		return nil, s.compensate(ctx, project, err)
	}

	if err := s.settingsRepo.Create(ctx, settings); err != nil {
		return nil, s.compensate(ctx, project, err)
	}

	s.logger.Info("project created",
		"id", project.ID,
		"name", project.Name,
		"clerk_id", req.ClerkID,
		"settings_profile", s.registry.CurrentVersion(),
	)

	return project, nil
}

// compensate removes the project row created earlier in the same call.
// A failure during compensation itself propagates as the store error: the
// caller sees a 500 and the orphaned row needs operator attention.
func (s *projectService) compensate(ctx context.Context, project *models.Project, cause error) error {
	s.logger.Error("project settings creation failed, rolling back project",
		"project_id", project.ID,
		"error", cause,
	)

	if err := s.projectRepo.Delete(ctx, project.ID, project.ClerkID); err != nil {
		return fmt.Errorf("rollback project %s after settings failure: %w", project.ID, err)
	}

	return &domain.DependentCreationError{
		Message:      "failed to create project settings - project creation rolled back",
		ResourceType: "project_settings",
		ParentID:     project.ID,
	}
}

// GetProject retrieves a project by ID
func (s *projectService) GetProject(ctx context.Context, id, clerkID string) (*models.Project, error) {
	return s.projectRepo.GetByID(ctx, id, clerkID)
}

// ListProjects retrieves all projects for a user
func (s *projectService) ListProjects(ctx context.Context, clerkID string) ([]models.Project, error) {
	return s.projectRepo.List(ctx, clerkID)
}

// DeleteProject deletes a project and returns its prior representation
func (s *projectService) DeleteProject(ctx context.Context, id, clerkID string) (*models.Project, error) {
	// Ownership check doubles as the fetch of the prior representation
	project, err := s.projectRepo.GetByID(ctx, id, clerkID)
	if err != nil {
		return nil, err
	}

	if err := s.projectRepo.Delete(ctx, id, clerkID); err != nil {
		return nil, err
	}

	s.logger.Info("project deleted",
		"id", id,
		"clerk_id", clerkID,
	)

	return project, nil
}

// validateCreateRequest validates a create project request
func (s *projectService) validateCreateRequest(req *services.CreateProjectRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.ClerkID, validation.Required),
		validation.Field(&req.Name,
			validation.Required,
			validation.Length(1, config.MaxProjectNameLength),
			validation.By(validateTrimmedNonEmpty("name")),
		),
		validation.Field(&req.Description,
			validation.Length(0, config.MaxDescriptionLength),
		),
	)
}

// validateTrimmedNonEmpty rejects values that are blank after trimming
func validateTrimmedNonEmpty(field string) validation.RuleFunc {
	return func(value interface{}) error {
		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("%s must be a string", field)
		}
		if strings.TrimSpace(str) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}
