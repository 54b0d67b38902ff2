package config

import (
	"os"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

type Config struct {
	Port              string
	Environment       string
	DatabaseURL       string
	ClerkFrontendAPI  string
	ClerkJWKSURL      string // Constructed from ClerkFrontendAPI + /.well-known/jwks.json
	AuthorizedParties string // Comma-separated origins accepted in the azp claim
	CORSOrigins       string
	TablePrefix       string
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")
	tablePrefix := getTablePrefix(env)
	frontendAPI := getEnv("CLERK_FRONTEND_API", "")

	// Construct JWKS URL from the Clerk frontend API host
	jwksURL := frontendAPI + "/.well-known/jwks.json"

	return &Config{
		Port:              getEnv("PORT", "8000"),
		Environment:       env,
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		ClerkFrontendAPI:  frontendAPI,
		ClerkJWKSURL:      jwksURL,
		AuthorizedParties: getEnv("CLERK_AUTHORIZED_PARTIES", "http://localhost:3000"),
		CORSOrigins:       getEnv("CORS_ORIGINS", "http://localhost:3000"),
		TablePrefix:       tablePrefix,
	}
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	// Auto-generate based on environment
	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
