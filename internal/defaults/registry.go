package defaults

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"sixfigure/internal/domain/models"
)

//go:embed config/*.yaml
var configFiles embed.FS

// SettingsProfile is one versioned set of default project settings
type SettingsProfile struct {
	EmbeddingModel      string  `yaml:"embedding_model"`
	RAGStrategy         string  `yaml:"rag_strategy"`
	AgentType           string  `yaml:"agent_type"`
	ChunksPerSearch     int     `yaml:"chunks_per_search"`
	FinalContextSize    int     `yaml:"final_context_size"`
	SimilarityThreshold float64 `yaml:"similarity_threshold"`
	NumberOfQueries     int     `yaml:"number_of_queries"`
	RerankingEnabled    bool    `yaml:"reranking_enabled"`
	RerankingModel      string  `yaml:"reranking_model"`
	VectorWeight        float64 `yaml:"vector_weight"`
	KeywordWeight       float64 `yaml:"keyword_weight"`
}

type profileFile struct {
	Current  string                      `yaml:"current"`
	Profiles map[string]*SettingsProfile `yaml:"profiles"`
}

// Registry holds the versioned default settings profiles
type Registry struct {
	current  string
	profiles map[string]*SettingsProfile
	mu       sync.RWMutex
}

// NewRegistry creates a settings registry from the embedded YAML file
func NewRegistry() (*Registry, error) {
	data, err := configFiles.ReadFile("config/settings.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read settings profiles: %w", err)
	}

	var file profileFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings profiles: %w", err)
	}

	if file.Current == "" {
		return nil, fmt.Errorf("settings profiles: no current version declared")
	}
	if _, ok := file.Profiles[file.Current]; !ok {
		return nil, fmt.Errorf("settings profiles: current version %q not defined", file.Current)
	}

	return &Registry{
		current:  file.Current,
		profiles: file.Profiles,
	}, nil
}

// CurrentVersion returns the profile version applied to new projects
func (r *Registry) CurrentVersion() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Profile returns the profile for a specific version
func (r *Registry) Profile(version string) (*SettingsProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.profiles[version]
	if !ok {
		return nil, fmt.Errorf("settings profile %q not found", version)
	}
	return profile, nil
}

// SettingsFor materializes the current default settings for a project
func (r *Registry) SettingsFor(projectID string) (*models.ProjectSettings, error) {
	profile, err := r.Profile(r.CurrentVersion())
	if err != nil {
		return nil, err
	}

	return &models.ProjectSettings{
		ProjectID:           projectID,
		EmbeddingModel:      profile.EmbeddingModel,
		RAGStrategy:         profile.RAGStrategy,
		AgentType:           profile.AgentType,
		ChunksPerSearch:     profile.ChunksPerSearch,
		FinalContextSize:    profile.FinalContextSize,
		SimilarityThreshold: profile.SimilarityThreshold,
		NumberOfQueries:     profile.NumberOfQueries,
		RerankingEnabled:    profile.RerankingEnabled,
		RerankingModel:      profile.RerankingModel,
		VectorWeight:        profile.VectorWeight,
		KeywordWeight:       profile.KeywordWeight,
	}, nil
}
