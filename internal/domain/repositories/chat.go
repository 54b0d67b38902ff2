package repositories

import (
	"context"

	"sixfigure/internal/domain/models"
)

// ChatRepository defines data access operations for chats
type ChatRepository interface {
	// Create creates a new chat and returns it with generated ID and timestamps
	Create(ctx context.Context, chat *models.Chat) error

	// ListByProject retrieves a project's chats for a user, ordered by
	// created_at DESC. Filtered by both project ID and owner.
	ListByProject(ctx context.Context, projectID, clerkID string) ([]models.Chat, error)

	// Delete deletes a chat, filtered by owner
	Delete(ctx context.Context, id, clerkID string) error
}
