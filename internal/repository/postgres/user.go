package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"sixfigure/internal/domain"
	"sixfigure/internal/domain/models"
	"sixfigure/internal/domain/repositories"
)

// PostgresUserRepository implements the UserRepository interface
type PostgresUserRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewUserRepository creates a new user repository
func NewUserRepository(config *RepositoryConfig) repositories.UserRepository {
	return &PostgresUserRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// GetByClerkID retrieves a user by Clerk ID.
// Returns (nil, nil) when no user exists.
func (r *PostgresUserRepository) GetByClerkID(ctx context.Context, clerkID string) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT id, clerk_id, created_at
		FROM %s
		WHERE clerk_id = $1
	`, r.tables.Users)

	var user models.User
	err := r.pool.QueryRow(ctx, query, clerkID).Scan(
		&user.ID,
		&user.ClerkID,
		&user.CreatedAt,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

// Create inserts a new user keyed by Clerk ID.
// The unique constraint on clerk_id is the source of truth for idempotent
// provisioning: a losing concurrent insert comes back as a ConflictError.
func (r *PostgresUserRepository) Create(ctx context.Context, user *models.User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (clerk_id)
		VALUES ($1)
		RETURNING id, clerk_id, created_at
	`, r.tables.Users)

	err := r.pool.QueryRow(ctx, query, user.ClerkID).Scan(
		&user.ID,
		&user.ClerkID,
		&user.CreatedAt,
	)

	if err != nil {
		if isPgDuplicateError(err) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("user '%s' already exists", user.ClerkID),
				ResourceType: "user",
				ResourceID:   user.ClerkID,
			}
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}
