package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"sixfigure/internal/config"
	"sixfigure/internal/repository/postgres"

	"github.com/joho/godotenv"
)

// Schema bootstrap for the environment-prefixed tables.
//
// The FK graph carries the integrity guarantees the services lean on:
// ON DELETE CASCADE from projects to settings, chats, and documents makes a
// project delete a single statement, and the unique constraint on
// users.clerk_id is what makes webhook provisioning idempotent under
// concurrent replay.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("running migrations",
		"environment", cfg.Environment,
		"table_prefix", cfg.TablePrefix,
	)

	p := cfg.TablePrefix
	schema := fmt.Sprintf(`
		CREATE EXTENSION IF NOT EXISTS pgcrypto;

		CREATE TABLE IF NOT EXISTS %[1]susers (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			clerk_id TEXT NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS %[1]sprojects (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			clerk_id TEXT NOT NULL,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS %[1]sprojects_clerk_id_idx ON %[1]sprojects (clerk_id);

		CREATE TABLE IF NOT EXISTS %[1]sproject_settings (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			project_id UUID NOT NULL UNIQUE REFERENCES %[1]sprojects (id) ON DELETE CASCADE,
			embedding_model TEXT NOT NULL,
			rag_strategy TEXT NOT NULL,
			agent_type TEXT NOT NULL,
			chunks_per_search INTEGER NOT NULL,
			final_context_size INTEGER NOT NULL,
			similarity_threshold DOUBLE PRECISION NOT NULL,
			number_of_queries INTEGER NOT NULL,
			reranking_enabled BOOLEAN NOT NULL,
			reranking_model TEXT NOT NULL,
			vector_weight DOUBLE PRECISION NOT NULL,
			keyword_weight DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS %[1]schats (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			clerk_id TEXT NOT NULL,
			project_id UUID NOT NULL REFERENCES %[1]sprojects (id) ON DELETE CASCADE,
			title VARCHAR(255) NOT NULL DEFAULT 'New Chat',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS %[1]schats_project_idx ON %[1]schats (project_id, clerk_id, created_at DESC);

		CREATE TABLE IF NOT EXISTS %[1]sproject_documents (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			clerk_id TEXT NOT NULL,
			project_id UUID NOT NULL REFERENCES %[1]sprojects (id) ON DELETE CASCADE,
			filename TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS %[1]sproject_documents_project_idx ON %[1]sproject_documents (project_id, clerk_id, created_at DESC);
	`, p)

	if _, err := pool.Exec(ctx, schema); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}

	logger.Info("schema applied", "table_prefix", cfg.TablePrefix)
}
