package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"sixfigure/internal/domain"
	"sixfigure/internal/domain/models"
	"sixfigure/internal/domain/repositories"
)

// PostgresProjectRepository implements the ProjectRepository interface
type PostgresProjectRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(config *RepositoryConfig) repositories.ProjectRepository {
	return &PostgresProjectRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create creates a new project
func (r *PostgresProjectRepository) Create(ctx context.Context, project *models.Project) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (clerk_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, r.tables.Projects)

	err := r.pool.QueryRow(ctx, query,
		project.ClerkID,
		project.Name,
		project.Description,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}

	return nil
}

// GetByID retrieves a project by ID, filtered by owner.
// A project owned by someone else scans as no rows, so ErrNotFound covers
// both "missing" and "not yours".
func (r *PostgresProjectRepository) GetByID(ctx context.Context, id, clerkID string) (*models.Project, error) {
	query := fmt.Sprintf(`
		SELECT id, clerk_id, name, description, created_at, updated_at
		FROM %s
		WHERE id = $1 AND clerk_id = $2
	`, r.tables.Projects)

	var project models.Project
	err := r.pool.QueryRow(ctx, query, id, clerkID).Scan(
		&project.ID,
		&project.ClerkID,
		&project.Name,
		&project.Description,
		&project.CreatedAt,
		&project.UpdatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	return &project, nil
}

// List retrieves all projects for a user, ordered by created_at DESC
func (r *PostgresProjectRepository) List(ctx context.Context, clerkID string) ([]models.Project, error) {
	query := fmt.Sprintf(`
		SELECT id, clerk_id, name, description, created_at, updated_at
		FROM %s
		WHERE clerk_id = $1
		ORDER BY created_at DESC
	`, r.tables.Projects)

	rows, err := r.pool.Query(ctx, query, clerkID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var project models.Project
		err := rows.Scan(
			&project.ID,
			&project.ClerkID,
			&project.Name,
			&project.Description,
			&project.CreatedAt,
			&project.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	// Return empty slice instead of nil if no projects
	if projects == nil {
		projects = []models.Project{}
	}

	return projects, nil
}

// Delete deletes a project, filtered by owner.
// Settings, documents, and chats go with it via ON DELETE CASCADE.
func (r *PostgresProjectRepository) Delete(ctx context.Context, id, clerkID string) error {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1 AND clerk_id = $2
	`, r.tables.Projects)

	result, err := r.pool.Exec(ctx, query, id, clerkID)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
