package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"sixfigure/internal/domain"
	"sixfigure/internal/domain/models"
	"sixfigure/internal/domain/repositories"
)

// PostgresSettingsRepository implements the SettingsRepository interface
type PostgresSettingsRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(config *RepositoryConfig) repositories.SettingsRepository {
	return &PostgresSettingsRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

const settingsColumns = `id, project_id, embedding_model, rag_strategy, agent_type,
		chunks_per_search, final_context_size, similarity_threshold, number_of_queries,
		reranking_enabled, reranking_model, vector_weight, keyword_weight,
		created_at, updated_at`

func scanSettings(row interface{ Scan(...any) error }, s *models.ProjectSettings) error {
	return row.Scan(
		&s.ID,
		&s.ProjectID,
		&s.EmbeddingModel,
		&s.RAGStrategy,
		&s.AgentType,
		&s.ChunksPerSearch,
		&s.FinalContextSize,
		&s.SimilarityThreshold,
		&s.NumberOfQueries,
		&s.RerankingEnabled,
		&s.RerankingModel,
		&s.VectorWeight,
		&s.KeywordWeight,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
}

// Create inserts the settings row for a project
func (r *PostgresSettingsRepository) Create(ctx context.Context, settings *models.ProjectSettings) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (project_id, embedding_model, rag_strategy, agent_type,
			chunks_per_search, final_context_size, similarity_threshold, number_of_queries,
			reranking_enabled, reranking_model, vector_weight, keyword_weight)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING %s
	`, r.tables.Settings, settingsColumns)

	row := r.pool.QueryRow(ctx, query,
		settings.ProjectID,
		settings.EmbeddingModel,
		settings.RAGStrategy,
		settings.AgentType,
		settings.ChunksPerSearch,
		settings.FinalContextSize,
		settings.SimilarityThreshold,
		settings.NumberOfQueries,
		settings.RerankingEnabled,
		settings.RerankingModel,
		settings.VectorWeight,
		settings.KeywordWeight,
	)

	if err := scanSettings(row, settings); err != nil {
		if isPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("settings for project %s already exist", settings.ProjectID),
				ResourceType: "project_settings",
				ResourceID:   settings.ProjectID,
			}
		}
		return fmt.Errorf("create project settings: %w", err)
	}

	return nil
}

// GetByProjectID retrieves the settings row for a project
func (r *PostgresSettingsRepository) GetByProjectID(ctx context.Context, projectID string) (*models.ProjectSettings, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE project_id = $1
	`, settingsColumns, r.tables.Settings)

	var settings models.ProjectSettings
	row := r.pool.QueryRow(ctx, query, projectID)
	if err := scanSettings(row, &settings); err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("settings for project %s: %w", projectID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get project settings: %w", err)
	}

	return &settings, nil
}

// Replace overwrites the full settings row for a project
func (r *PostgresSettingsRepository) Replace(ctx context.Context, settings *models.ProjectSettings) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET embedding_model = $2,
			rag_strategy = $3,
			agent_type = $4,
			chunks_per_search = $5,
			final_context_size = $6,
			similarity_threshold = $7,
			number_of_queries = $8,
			reranking_enabled = $9,
			reranking_model = $10,
			vector_weight = $11,
			keyword_weight = $12,
			updated_at = now()
		WHERE project_id = $1
		RETURNING %s
	`, r.tables.Settings, settingsColumns)

	row := r.pool.QueryRow(ctx, query,
		settings.ProjectID,
		settings.EmbeddingModel,
		settings.RAGStrategy,
		settings.AgentType,
		settings.ChunksPerSearch,
		settings.FinalContextSize,
		settings.SimilarityThreshold,
		settings.NumberOfQueries,
		settings.RerankingEnabled,
		settings.RerankingModel,
		settings.VectorWeight,
		settings.KeywordWeight,
	)

	if err := scanSettings(row, settings); err != nil {
		if isPgNoRowsError(err) {
			return fmt.Errorf("settings for project %s: %w", settings.ProjectID, domain.ErrNotFound)
		}
		return fmt.Errorf("replace project settings: %w", err)
	}

	return nil
}
