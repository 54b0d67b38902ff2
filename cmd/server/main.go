package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"sixfigure/internal/auth"
	"sixfigure/internal/config"
	"sixfigure/internal/defaults"
	"sixfigure/internal/handler"
	"sixfigure/internal/middleware"
	"sixfigure/internal/repository/postgres"
	"sixfigure/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Create JWT verifier for Clerk authentication
	jwtVerifier, err := auth.NewJWTVerifier(cfg.ClerkJWKSURL, strings.Split(cfg.AuthorizedParties, ","), logger)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	defer jwtVerifier.Close()

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", 25,
		"min_conns", 5,
	)

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: postgres.NewTableNames(cfg.TablePrefix),
		Logger: logger,
	}
	userRepo := postgres.NewUserRepository(repoConfig)
	projectRepo := postgres.NewProjectRepository(repoConfig)
	settingsRepo := postgres.NewSettingsRepository(repoConfig)
	chatRepo := postgres.NewChatRepository(repoConfig)
	docRepo := postgres.NewDocumentRepository(repoConfig)

	// Load the versioned default settings profiles
	registry, err := defaults.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load default settings profiles: %v", err)
	}
	logger.Info("default settings profiles loaded", "current", registry.CurrentVersion())

	// Create services
	projectService := service.NewProjectService(projectRepo, settingsRepo, registry, logger)
	settingsService := service.NewSettingsService(projectRepo, settingsRepo, logger)
	chatService := service.NewChatService(chatRepo, projectRepo, logger)
	documentService := service.NewDocumentService(docRepo, projectRepo, logger)
	provisionService := service.NewProvisionService(userRepo, logger)

	// Create handlers
	healthHandler := handler.NewHealthHandler()
	webhookHandler := handler.NewWebhookHandler(provisionService, logger)
	projectHandler := handler.NewProjectHandler(projectService, logger)
	settingsHandler := handler.NewSettingsHandler(settingsService, logger)
	chatHandler := handler.NewChatHandler(chatService, logger)
	documentHandler := handler.NewDocumentHandler(documentService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Liveness
	mux.HandleFunc("GET /{$}", healthHandler.Root)
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Clerk provisioning webhook
	mux.HandleFunc("POST /api/users/webhook", webhookHandler.HandleClerkWebhook)

	// Project routes
	mux.HandleFunc("GET /api/projects", projectHandler.ListProjects)
	mux.HandleFunc("POST /api/projects", projectHandler.CreateProject)
	mux.HandleFunc("GET /api/projects/{id}", projectHandler.GetProject)
	mux.HandleFunc("DELETE /api/projects/{id}", projectHandler.DeleteProject)

	// Project child resources
	mux.HandleFunc("GET /api/projects/{id}/chats", chatHandler.ListProjectChats)
	mux.HandleFunc("GET /api/projects/{id}/settings", settingsHandler.GetSettings)
	mux.HandleFunc("PUT /api/projects/{id}/settings", settingsHandler.UpdateSettings)
	mux.HandleFunc("GET /api/projects/{id}/files", documentHandler.ListProjectDocuments)

	// Chat routes
	mux.HandleFunc("POST /api/chats", chatHandler.CreateChat)
	mux.HandleFunc("DELETE /api/chats/{id}", chatHandler.DeleteChat)

	// Build middleware chain
	var root http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Auth → Routes
	root = middleware.Auth(jwtVerifier, logger)(root)
	root = middleware.Recovery(logger)(root)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
