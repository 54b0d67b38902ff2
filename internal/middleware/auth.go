package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"sixfigure/internal/auth"
	"sixfigure/internal/httputil"
)

// publicPaths are reachable without a session token. The webhook is signed by
// the provider, not by a user; signature verification belongs to the webhook
// ingress, not to this middleware.
var publicPaths = map[string]bool{
	"/":                  true,
	"/health":            true,
	"/api/users/webhook": true,
}

// Auth verifies the Bearer token on every non-public request and stores the
// resolved Clerk user ID in the request context.
func Auth(verifier auth.JWTVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || token == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				logger.Debug("authentication failed",
					"path", r.URL.Path,
					"error", err,
				)
				httputil.RespondError(w, http.StatusUnauthorized, "authentication failed")
				return
			}

			next.ServeHTTP(w, httputil.WithClerkID(r, claims.GetClerkID()))
		})
	}
}
