package service

import (
	"context"
	"errors"
	"testing"

	"sixfigure/internal/defaults"
	"sixfigure/internal/domain"
	"sixfigure/internal/domain/services"
)

func newProjectFixture(t *testing.T) (services.ProjectService, *fakeProjectRepo, *fakeSettingsRepo) {
	t.Helper()

	registry, err := defaults.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() unexpected error: %v", err)
	}

	projectRepo := newFakeProjectRepo()
	settingsRepo := newFakeSettingsRepo()
	svc := NewProjectService(projectRepo, settingsRepo, registry, testLogger())
	return svc, projectRepo, settingsRepo
}

func TestCreateProject_CreatesDefaultSettings(t *testing.T) {
	svc, _, settingsRepo := newProjectFixture(t)
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, &services.CreateProjectRequest{
		ClerkID: "user_1",
		Name:    "Demo",
	})
	if err != nil {
		t.Fatalf("CreateProject() unexpected error: %v", err)
	}

	if project.Name != "Demo" {
		t.Errorf("project name = %q, want %q", project.Name, "Demo")
	}
	if project.Description != "" {
		t.Errorf("project description = %q, want empty", project.Description)
	}

	settings, err := settingsRepo.GetByProjectID(ctx, project.ID)
	if err != nil {
		t.Fatalf("settings not created alongside project: %v", err)
	}

	if settings.EmbeddingModel != "text-embedding-3-large" {
		t.Errorf("embedding_model = %q, want %q", settings.EmbeddingModel, "text-embedding-3-large")
	}
	if settings.RAGStrategy != "basic" {
		t.Errorf("rag_strategy = %q, want %q", settings.RAGStrategy, "basic")
	}
	if settings.AgentType != "agentic" {
		t.Errorf("agent_type = %q, want %q", settings.AgentType, "agentic")
	}
	if settings.ChunksPerSearch != 10 {
		t.Errorf("chunks_per_search = %d, want 10", settings.ChunksPerSearch)
	}
	if settings.FinalContextSize != 5 {
		t.Errorf("final_context_size = %d, want 5", settings.FinalContextSize)
	}
	if settings.SimilarityThreshold != 0.3 {
		t.Errorf("similarity_threshold = %v, want 0.3", settings.SimilarityThreshold)
	}
	if settings.NumberOfQueries != 5 {
		t.Errorf("number_of_queries = %d, want 5", settings.NumberOfQueries)
	}
	if !settings.RerankingEnabled {
		t.Error("reranking_enabled = false, want true")
	}
	if settings.RerankingModel != "rerank-english-v3.0" {
		t.Errorf("reranking_model = %q, want %q", settings.RerankingModel, "rerank-english-v3.0")
	}
	if settings.VectorWeight != 0.7 {
		t.Errorf("vector_weight = %v, want 0.7", settings.VectorWeight)
	}
	if settings.KeywordWeight != 0.3 {
		t.Errorf("keyword_weight = %v, want 0.3", settings.KeywordWeight)
	}
}

func TestCreateProject_Validation(t *testing.T) {
	svc, _, _ := newProjectFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *services.CreateProjectRequest
	}{
		{
			name: "missing name",
			req:  &services.CreateProjectRequest{ClerkID: "user_1"},
		},
		{
			name: "whitespace name",
			req:  &services.CreateProjectRequest{ClerkID: "user_1", Name: "   "},
		},
		{
			name: "missing clerk id",
			req:  &services.CreateProjectRequest{Name: "Demo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateProject(ctx, tt.req)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("CreateProject() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestCreateProject_RollbackOnSettingsFailure(t *testing.T) {
	svc, projectRepo, settingsRepo := newProjectFixture(t)
	ctx := context.Background()

	settingsRepo.createErr = errors.New("settings insert refused")

	_, err := svc.CreateProject(ctx, &services.CreateProjectRequest{
		ClerkID: "user_1",
		Name:    "Demo",
	})
	if !errors.Is(err, domain.ErrDependentCreation) {
		t.Fatalf("CreateProject() error = %v, want ErrDependentCreation", err)
	}

	// Rollback property: the project row must be gone
	if len(projectRepo.projects) != 0 {
		t.Errorf("project row survived a failed settings insert: %d rows", len(projectRepo.projects))
	}
}

func TestCreateProject_CompensationFailurePropagates(t *testing.T) {
	svc, projectRepo, settingsRepo := newProjectFixture(t)
	ctx := context.Background()

	settingsRepo.createErr = errors.New("settings insert refused")
	projectRepo.deleteErr = errors.New("store unavailable")

	_, err := svc.CreateProject(ctx, &services.CreateProjectRequest{
		ClerkID: "user_1",
		Name:    "Demo",
	})
	if err == nil {
		t.Fatal("CreateProject() expected error, got nil")
	}
	// A failed compensation is not reported as a clean rollback
	if errors.Is(err, domain.ErrDependentCreation) {
		t.Errorf("CreateProject() error = %v, must not report a rollback that did not happen", err)
	}
}

func TestGetProject_OwnershipIndistinguishable(t *testing.T) {
	svc, _, _ := newProjectFixture(t)
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, &services.CreateProjectRequest{
		ClerkID: "user_a",
		Name:    "Secret",
	})
	if err != nil {
		t.Fatalf("CreateProject() unexpected error: %v", err)
	}

	// Another user's project and a nonexistent id must fail identically
	_, errForeign := svc.GetProject(ctx, project.ID, "user_b")
	_, errMissing := svc.GetProject(ctx, "00000000-0000-0000-0000-000000000000", "user_b")

	if !errors.Is(errForeign, domain.ErrNotFound) {
		t.Errorf("foreign project error = %v, want ErrNotFound", errForeign)
	}
	if !errors.Is(errMissing, domain.ErrNotFound) {
		t.Errorf("missing project error = %v, want ErrNotFound", errMissing)
	}
}

func TestDeleteProject(t *testing.T) {
	svc, projectRepo, settingsRepo := newProjectFixture(t)
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, &services.CreateProjectRequest{
		ClerkID: "user_1",
		Name:    "Demo",
	})
	if err != nil {
		t.Fatalf("CreateProject() unexpected error: %v", err)
	}

	deleted, err := svc.DeleteProject(ctx, project.ID, "user_1")
	if err != nil {
		t.Fatalf("DeleteProject() unexpected error: %v", err)
	}
	if deleted.ID != project.ID || deleted.Name != "Demo" {
		t.Errorf("DeleteProject() returned %+v, want prior representation of %s", deleted, project.ID)
	}

	if _, err := svc.GetProject(ctx, project.ID, "user_1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetProject() after delete error = %v, want ErrNotFound", err)
	}

	// Settings are unreachable once the project is gone, even before the
	// store's cascade catches up: the ownership gate fails first.
	settingsSvc := NewSettingsService(projectRepo, settingsRepo, testLogger())
	if _, err := settingsSvc.GetSettings(ctx, project.ID, "user_1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetSettings() after delete error = %v, want ErrNotFound", err)
	}
}

func TestDeleteProject_NotOwned(t *testing.T) {
	svc, _, _ := newProjectFixture(t)
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, &services.CreateProjectRequest{
		ClerkID: "user_a",
		Name:    "Demo",
	})
	if err != nil {
		t.Fatalf("CreateProject() unexpected error: %v", err)
	}

	if _, err := svc.DeleteProject(ctx, project.ID, "user_b"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("DeleteProject() as non-owner error = %v, want ErrNotFound", err)
	}

	// Still there for the owner
	if _, err := svc.GetProject(ctx, project.ID, "user_a"); err != nil {
		t.Errorf("GetProject() after foreign delete attempt error = %v", err)
	}
}
