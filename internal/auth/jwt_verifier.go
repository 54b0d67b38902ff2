package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"sixfigure/internal/domain"
	"sixfigure/internal/domain/models"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

// ClerkJWTVerifier implements JWTVerifier using JWKS from Clerk.
type ClerkJWTVerifier struct {
	jwks              keyfunc.Keyfunc
	authorizedParties map[string]struct{}
	logger            *slog.Logger
}

// NewJWTVerifier creates a verifier that fetches public keys from the Clerk
// instance's JWKS endpoint. Keys are cached and refreshed by keyfunc based on
// HTTP cache headers. authorizedParties lists the frontend origins whose
// session tokens are accepted (azp claim); an empty list disables the check.
func NewJWTVerifier(jwksURL string, authorizedParties []string, logger *slog.Logger) (JWTVerifier, error) {
	if jwksURL == "" {
		return nil, errors.New("JWKS URL cannot be empty")
	}

	ctx := context.Background()
	jwks, err := keyfunc.NewDefaultCtx(ctx, []string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("failed to create JWKS client: %w", err)
	}

	parties := make(map[string]struct{}, len(authorizedParties))
	for _, p := range authorizedParties {
		if p != "" {
			parties[p] = struct{}{}
		}
	}

	logger.Info("JWT verifier initialized", "jwks_url", jwksURL, "authorized_parties", len(parties))

	return &ClerkJWTVerifier{
		jwks:              jwks,
		authorizedParties: parties,
		logger:            logger,
	}, nil
}

// VerifyToken validates a Clerk session token and extracts its claims.
// Returns an error if the token is invalid, expired, or has incorrect claims.
func (v *ClerkJWTVerifier) VerifyToken(tokenString string) (*models.ClerkClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.ClerkClaims{}, v.jwks.Keyfunc)
	if err != nil {
		v.logger.Debug("token parse failed", "error", err.Error())
		return nil, domain.ErrUnauthorized
	}

	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	// Prevent algorithm confusion attacks - allow only RS256 or ES256
	switch token.Method.Alg() {
	case "RS256", "ES256":
		// allowed
	default:
		v.logger.Warn("token uses unexpected algorithm", "algorithm", token.Method.Alg(), "allowed", []string{"RS256", "ES256"})
		return nil, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(*models.ClerkClaims)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	// The sub claim carries the Clerk user ID every owned row is keyed by
	if claims.Subject == "" {
		v.logger.Debug("token missing subject claim")
		return nil, domain.ErrUnauthorized
	}

	// Reject tokens minted for a frontend we don't serve
	if len(v.authorizedParties) > 0 && claims.AuthorizedParty != "" {
		if _, ok := v.authorizedParties[claims.AuthorizedParty]; !ok {
			v.logger.Warn("token from unauthorized party", "azp", claims.AuthorizedParty)
			return nil, domain.ErrUnauthorized
		}
	}

	return claims, nil
}

// Close releases resources held by the JWT verifier.
// keyfunc v3 manages its own refresh lifecycle, so this is a no-op kept for
// graceful shutdown compatibility.
func (v *ClerkJWTVerifier) Close() error {
	v.logger.Info("JWT verifier closed")
	return nil
}
