package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"sixfigure/internal/domain"
	"sixfigure/internal/domain/models"
	"sixfigure/internal/domain/repositories"
)

// PostgresChatRepository implements the ChatRepository interface
type PostgresChatRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewChatRepository creates a new chat repository
func NewChatRepository(config *RepositoryConfig) repositories.ChatRepository {
	return &PostgresChatRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create creates a new chat
func (r *PostgresChatRepository) Create(ctx context.Context, chat *models.Chat) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (clerk_id, project_id, title)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, r.tables.Chats)

	err := r.pool.QueryRow(ctx, query,
		chat.ClerkID,
		chat.ProjectID,
		chat.Title,
	).Scan(&chat.ID, &chat.CreatedAt, &chat.UpdatedAt)

	if err != nil {
		if isPgForeignKeyError(err) {
			return fmt.Errorf("project %s: %w", chat.ProjectID, domain.ErrNotFound)
		}
		return fmt.Errorf("create chat: %w", err)
	}

	return nil
}

// ListByProject retrieves a project's chats for a user, ordered by created_at DESC
func (r *PostgresChatRepository) ListByProject(ctx context.Context, projectID, clerkID string) ([]models.Chat, error) {
	query := fmt.Sprintf(`
		SELECT id, clerk_id, project_id, title, created_at, updated_at
		FROM %s
		WHERE project_id = $1 AND clerk_id = $2
		ORDER BY created_at DESC
	`, r.tables.Chats)

	rows, err := r.pool.Query(ctx, query, projectID, clerkID)
	if err != nil {
		return nil, fmt.Errorf("list chats: %w", err)
	}
	defer rows.Close()

	var chats []models.Chat
	for rows.Next() {
		var chat models.Chat
		err := rows.Scan(
			&chat.ID,
			&chat.ClerkID,
			&chat.ProjectID,
			&chat.Title,
			&chat.CreatedAt,
			&chat.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan chat: %w", err)
		}
		chats = append(chats, chat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chats: %w", err)
	}

	if chats == nil {
		chats = []models.Chat{}
	}

	return chats, nil
}

// Delete deletes a chat, filtered by owner
func (r *PostgresChatRepository) Delete(ctx context.Context, id, clerkID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1 AND clerk_id = $2
	`, r.tables.Chats)

	result, err := r.pool.Exec(ctx, query, id, clerkID)
	if err != nil {
		return fmt.Errorf("delete chat: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("chat %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
