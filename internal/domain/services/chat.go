package services

import (
	"context"

	"sixfigure/internal/domain/models"
)

// CreateChatRequest represents a request to create a chat
type CreateChatRequest struct {
	ClerkID   string `json:"clerk_id"`
	ProjectID string `json:"project_id"`
	Title     string `json:"title"`
}

// ChatService defines business logic operations for chats
type ChatService interface {
	// CreateChat creates a chat in a project the caller owns
	CreateChat(ctx context.Context, req *CreateChatRequest) (*models.Chat, error)

	// ListProjectChats lists the chats of an owned project, newest first
	ListProjectChats(ctx context.Context, projectID, clerkID string) ([]models.Chat, error)

	// DeleteChat deletes a chat owned by the caller
	DeleteChat(ctx context.Context, id, clerkID string) error
}
