package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"sixfigure/internal/config"
	"sixfigure/internal/domain"
	"sixfigure/internal/domain/models"
	"sixfigure/internal/domain/repositories"
	"sixfigure/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultChatTitle is used when a create request carries no title
const DefaultChatTitle = "New Chat"

// chatService implements the ChatService interface
type chatService struct {
	chatRepo    repositories.ChatRepository
	projectRepo repositories.ProjectRepository
	logger      *slog.Logger
}

// NewChatService creates a new chat service
func NewChatService(
	chatRepo repositories.ChatRepository,
	projectRepo repositories.ProjectRepository,
	logger *slog.Logger,
) services.ChatService {
	return &chatService{
		chatRepo:    chatRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// CreateChat creates a chat in a project the caller owns.
// The referenced project must belong to the caller; a foreign project is
// reported as not found, same as a missing one.
func (s *chatService) CreateChat(ctx context.Context, req *services.CreateChatRequest) (*models.Chat, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if _, err := s.projectRepo.GetByID(ctx, req.ProjectID, req.ClerkID); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = DefaultChatTitle
	}

	chat := &models.Chat{
		ClerkID:   req.ClerkID,
		ProjectID: req.ProjectID,
		Title:     title,
	}

	if err := s.chatRepo.Create(ctx, chat); err != nil {
		return nil, err
	}

	s.logger.Info("chat created",
		"id", chat.ID,
		"project_id", chat.ProjectID,
		"clerk_id", req.ClerkID,
	)

	return chat, nil
}

// ListProjectChats lists the chats of an owned project, newest first
func (s *chatService) ListProjectChats(ctx context.Context, projectID, clerkID string) ([]models.Chat, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID, clerkID); err != nil {
		return nil, err
	}

	return s.chatRepo.ListByProject(ctx, projectID, clerkID)
}

// DeleteChat deletes a chat owned by the caller
func (s *chatService) DeleteChat(ctx context.Context, id, clerkID string) error {
	if err := s.chatRepo.Delete(ctx, id, clerkID); err != nil {
		return err
	}

	s.logger.Info("chat deleted",
		"id", id,
		"clerk_id", clerkID,
	)

	return nil
}

// validateCreateRequest validates a create chat request
func (s *chatService) validateCreateRequest(req *services.CreateChatRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.ClerkID, validation.Required),
		validation.Field(&req.ProjectID, validation.Required),
		validation.Field(&req.Title, validation.Length(0, config.MaxChatTitleLength)),
	)
}
