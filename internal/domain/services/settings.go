package services

import (
	"context"

	"sixfigure/internal/domain/models"
)

// UpdateSettingsRequest is a full-replacement settings payload.
// All eleven fields are required; pointers distinguish "absent" from a
// zero value so presence can be validated.
type UpdateSettingsRequest struct {
	EmbeddingModel      *string  `json:"embedding_model"`
	RAGStrategy         *string  `json:"rag_strategy"`
	AgentType           *string  `json:"agent_type"`
	ChunksPerSearch     *int     `json:"chunks_per_search"`
	FinalContextSize    *int     `json:"final_context_size"`
	SimilarityThreshold *float64 `json:"similarity_threshold"`
	NumberOfQueries     *int     `json:"number_of_queries"`
	RerankingEnabled    *bool    `json:"reranking_enabled"`
	RerankingModel      *string  `json:"reranking_model"`
	VectorWeight        *float64 `json:"vector_weight"`
	KeywordWeight       *float64 `json:"keyword_weight"`
}

// SettingsService defines business logic operations for project settings
type SettingsService interface {
	// GetSettings retrieves the settings of an owned project
	GetSettings(ctx context.Context, projectID, clerkID string) (*models.ProjectSettings, error)

	// UpdateSettings replaces the full settings row of an owned project.
	// Partial updates are not supported.
	UpdateSettings(ctx context.Context, projectID, clerkID string, req *UpdateSettingsRequest) (*models.ProjectSettings, error)
}
