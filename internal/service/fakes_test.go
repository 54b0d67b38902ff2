package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"sixfigure/internal/domain"
	"sixfigure/internal/domain/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeProjectRepo is an in-memory ProjectRepository
type fakeProjectRepo struct {
	projects  map[string]*models.Project
	createErr error
	deleteErr error
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]*models.Project)}
}

func (r *fakeProjectRepo) Create(ctx context.Context, project *models.Project) error {
	if r.createErr != nil {
		return r.createErr
	}
	project.ID = uuid.NewString()
	project.CreatedAt = time.Now()
	project.UpdatedAt = project.CreatedAt
	stored := *project
	r.projects[project.ID] = &stored
	return nil
}

func (r *fakeProjectRepo) GetByID(ctx context.Context, id, clerkID string) (*models.Project, error) {
	project, ok := r.projects[id]
	if !ok || project.ClerkID != clerkID {
		return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	copied := *project
	return &copied, nil
}

func (r *fakeProjectRepo) List(ctx context.Context, clerkID string) ([]models.Project, error) {
	projects := []models.Project{}
	for _, p := range r.projects {
		if p.ClerkID == clerkID {
			projects = append(projects, *p)
		}
	}
	return projects, nil
}

func (r *fakeProjectRepo) Delete(ctx context.Context, id, clerkID string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	project, ok := r.projects[id]
	if !ok || project.ClerkID != clerkID {
		return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	delete(r.projects, id)
	return nil
}

// fakeSettingsRepo is an in-memory SettingsRepository keyed by project ID
type fakeSettingsRepo struct {
	settings  map[string]*models.ProjectSettings
	createErr error
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{settings: make(map[string]*models.ProjectSettings)}
}

func (r *fakeSettingsRepo) Create(ctx context.Context, settings *models.ProjectSettings) error {
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.settings[settings.ProjectID]; ok {
		return &domain.ConflictError{
			Message:      fmt.Sprintf("settings for project %s already exist", settings.ProjectID),
			ResourceType: "project_settings",
			ResourceID:   settings.ProjectID,
		}
	}
	settings.ID = uuid.NewString()
	settings.CreatedAt = time.Now()
	settings.UpdatedAt = settings.CreatedAt
	stored := *settings
	r.settings[settings.ProjectID] = &stored
	return nil
}

func (r *fakeSettingsRepo) GetByProjectID(ctx context.Context, projectID string) (*models.ProjectSettings, error) {
	settings, ok := r.settings[projectID]
	if !ok {
		return nil, fmt.Errorf("settings for project %s: %w", projectID, domain.ErrNotFound)
	}
	copied := *settings
	return &copied, nil
}

func (r *fakeSettingsRepo) Replace(ctx context.Context, settings *models.ProjectSettings) error {
	existing, ok := r.settings[settings.ProjectID]
	if !ok {
		return fmt.Errorf("settings for project %s: %w", settings.ProjectID, domain.ErrNotFound)
	}
	settings.ID = existing.ID
	settings.CreatedAt = existing.CreatedAt
	settings.UpdatedAt = time.Now()
	stored := *settings
	r.settings[settings.ProjectID] = &stored
	return nil
}

// fakeUserRepo is an in-memory UserRepository.
// raceOnCreate simulates losing a check-then-insert race: the first Create
// call fails with a ConflictError as if a concurrent insert won.
type fakeUserRepo struct {
	users        map[string]*models.User
	raceOnCreate bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (r *fakeUserRepo) GetByClerkID(ctx context.Context, clerkID string) (*models.User, error) {
	user, ok := r.users[clerkID]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if r.raceOnCreate {
		r.raceOnCreate = false
		r.users[user.ClerkID] = &models.User{
			ID:        uuid.NewString(),
			ClerkID:   user.ClerkID,
			CreatedAt: time.Now(),
		}
	}
	if _, ok := r.users[user.ClerkID]; ok {
		return &domain.ConflictError{
			Message:      fmt.Sprintf("user '%s' already exists", user.ClerkID),
			ResourceType: "user",
			ResourceID:   user.ClerkID,
		}
	}
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	stored := *user
	r.users[user.ClerkID] = &stored
	return nil
}

// fakeChatRepo is an in-memory ChatRepository
type fakeChatRepo struct {
	chats map[string]*models.Chat
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{chats: make(map[string]*models.Chat)}
}

func (r *fakeChatRepo) Create(ctx context.Context, chat *models.Chat) error {
	chat.ID = uuid.NewString()
	chat.CreatedAt = time.Now()
	chat.UpdatedAt = chat.CreatedAt
	stored := *chat
	r.chats[chat.ID] = &stored
	return nil
}

func (r *fakeChatRepo) ListByProject(ctx context.Context, projectID, clerkID string) ([]models.Chat, error) {
	chats := []models.Chat{}
	for _, c := range r.chats {
		if c.ProjectID == projectID && c.ClerkID == clerkID {
			chats = append(chats, *c)
		}
	}
	return chats, nil
}

func (r *fakeChatRepo) Delete(ctx context.Context, id, clerkID string) error {
	chat, ok := r.chats[id]
	if !ok || chat.ClerkID != clerkID {
		return fmt.Errorf("chat %s: %w", id, domain.ErrNotFound)
	}
	delete(r.chats, id)
	return nil
}

// fakeDocumentRepo is an in-memory DocumentRepository
type fakeDocumentRepo struct {
	docs []models.ProjectDocument
}

func (r *fakeDocumentRepo) ListByProject(ctx context.Context, projectID, clerkID string) ([]models.ProjectDocument, error) {
	docs := []models.ProjectDocument{}
	for _, d := range r.docs {
		if d.ProjectID == projectID && d.ClerkID == clerkID {
			docs = append(docs, d)
		}
	}
	return docs, nil
}
