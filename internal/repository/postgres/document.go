package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"sixfigure/internal/domain/models"
	"sixfigure/internal/domain/repositories"
)

// PostgresDocumentRepository implements the DocumentRepository interface
type PostgresDocumentRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(config *RepositoryConfig) repositories.DocumentRepository {
	return &PostgresDocumentRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// ListByProject retrieves a project's documents for a user, ordered by created_at DESC
func (r *PostgresDocumentRepository) ListByProject(ctx context.Context, projectID, clerkID string) ([]models.ProjectDocument, error) {
	query := fmt.Sprintf(`
		SELECT id, clerk_id, project_id, filename, status, created_at
		FROM %s
		WHERE project_id = $1 AND clerk_id = $2
		ORDER BY created_at DESC
	`, r.tables.Documents)

	rows, err := r.pool.Query(ctx, query, projectID, clerkID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []models.ProjectDocument
	for rows.Next() {
		var doc models.ProjectDocument
		err := rows.Scan(
			&doc.ID,
			&doc.ClerkID,
			&doc.ProjectID,
			&doc.Filename,
			&doc.Status,
			&doc.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}

	if docs == nil {
		docs = []models.ProjectDocument{}
	}

	return docs, nil
}
