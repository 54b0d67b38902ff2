package service

import (
	"context"
	"fmt"
	"log/slog"

	"sixfigure/internal/domain"
	"sixfigure/internal/domain/models"
	"sixfigure/internal/domain/repositories"
	"sixfigure/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// settingsService implements the SettingsService interface
type settingsService struct {
	projectRepo  repositories.ProjectRepository
	settingsRepo repositories.SettingsRepository
	logger       *slog.Logger
}

// NewSettingsService creates a new settings service
func NewSettingsService(
	projectRepo repositories.ProjectRepository,
	settingsRepo repositories.SettingsRepository,
	logger *slog.Logger,
) services.SettingsService {
	return &settingsService{
		projectRepo:  projectRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// GetSettings retrieves the settings of an owned project
func (s *settingsService) GetSettings(ctx context.Context, projectID, clerkID string) (*models.ProjectSettings, error) {
	// Ownership gate: settings rows carry no clerk_id, so access goes
	// through the project lookup, which is owner-filtered.
	if _, err := s.projectRepo.GetByID(ctx, projectID, clerkID); err != nil {
		return nil, err
	}

	return s.settingsRepo.GetByProjectID(ctx, projectID)
}

// UpdateSettings replaces the full settings row of an owned project.
// All eleven fields must be present; there is no partial update.
func (s *settingsService) UpdateSettings(ctx context.Context, projectID, clerkID string, req *services.UpdateSettingsRequest) (*models.ProjectSettings, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if _, err := s.projectRepo.GetByID(ctx, projectID, clerkID); err != nil {
		return nil, err
	}

	settings := &models.ProjectSettings{
		ProjectID:           projectID,
		EmbeddingModel:      *req.EmbeddingModel,
		RAGStrategy:         *req.RAGStrategy,
		AgentType:           *req.AgentType,
		ChunksPerSearch:     *req.ChunksPerSearch,
		FinalContextSize:    *req.FinalContextSize,
		SimilarityThreshold: *req.SimilarityThreshold,
		NumberOfQueries:     *req.NumberOfQueries,
		RerankingEnabled:    *req.RerankingEnabled,
		RerankingModel:      *req.RerankingModel,
		VectorWeight:        *req.VectorWeight,
		KeywordWeight:       *req.KeywordWeight,
	}

	// Replace returns ErrNotFound if the settings row is missing. That state
	// should not occur given create-time pairing, but an owned project with
	// no settings still has to come back as not found, not a 500.
	if err := s.settingsRepo.Replace(ctx, settings); err != nil {
		return nil, err
	}

	s.logger.Info("project settings updated",
		"project_id", projectID,
		"clerk_id", clerkID,
	)

	return settings, nil
}

// validateUpdateRequest checks presence of all eleven fields plus field-level
// ranges. Cross-field rules (weights summing to 1.0, final context not
// exceeding chunks per search) are intentionally NOT enforced; they remain
// caller responsibility.
func (s *settingsService) validateUpdateRequest(req *services.UpdateSettingsRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.EmbeddingModel, validation.NotNil),
		validation.Field(&req.RAGStrategy, validation.NotNil),
		validation.Field(&req.AgentType, validation.NotNil),
		// Required (not just NotNil) on the count fields: ozzo threshold rules
		// skip zero values, and zero counts are invalid anyway.
		validation.Field(&req.ChunksPerSearch, validation.Required, validation.Min(1)),
		validation.Field(&req.FinalContextSize, validation.Required, validation.Min(1)),
		validation.Field(&req.SimilarityThreshold, validation.NotNil, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&req.NumberOfQueries, validation.Required, validation.Min(1)),
		validation.Field(&req.RerankingEnabled, validation.NotNil),
		validation.Field(&req.RerankingModel, validation.NotNil),
		validation.Field(&req.VectorWeight, validation.NotNil),
		validation.Field(&req.KeywordWeight, validation.NotNil),
	)
}
