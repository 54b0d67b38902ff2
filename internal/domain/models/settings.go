package models

import (
	"time"
)

// ProjectSettings is the 1:1 configuration record controlling a project's
// retrieval and reranking behavior. Created atomically with its project from
// a versioned defaults profile, replaced in full on update, deleted via the
// project's cascade.
type ProjectSettings struct {
	ID                  string    `json:"id" db:"id"`
	ProjectID           string    `json:"project_id" db:"project_id"`
	EmbeddingModel      string    `json:"embedding_model" db:"embedding_model"`
	RAGStrategy         string    `json:"rag_strategy" db:"rag_strategy"`
	AgentType           string    `json:"agent_type" db:"agent_type"`
	ChunksPerSearch     int       `json:"chunks_per_search" db:"chunks_per_search"`
	FinalContextSize    int       `json:"final_context_size" db:"final_context_size"`
	SimilarityThreshold float64   `json:"similarity_threshold" db:"similarity_threshold"`
	NumberOfQueries     int       `json:"number_of_queries" db:"number_of_queries"`
	RerankingEnabled    bool      `json:"reranking_enabled" db:"reranking_enabled"`
	RerankingModel      string    `json:"reranking_model" db:"reranking_model"`
	VectorWeight        float64   `json:"vector_weight" db:"vector_weight"`
	KeywordWeight       float64   `json:"keyword_weight" db:"keyword_weight"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time `json:"updated_at" db:"updated_at"`
}
