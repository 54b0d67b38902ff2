package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"sixfigure/internal/domain"
	"sixfigure/internal/domain/models"
	"sixfigure/internal/httputil"
)

// fakeVerifier accepts a single token string
type fakeVerifier struct {
	validToken string
	clerkID    string
}

func (v *fakeVerifier) VerifyToken(tokenString string) (*models.ClerkClaims, error) {
	if tokenString != v.validToken {
		return nil, domain.ErrUnauthorized
	}
	claims := &models.ClerkClaims{}
	claims.Subject = v.clerkID
	return claims, nil
}

func (v *fakeVerifier) Close() error { return nil }

func TestAuth(t *testing.T) {
	verifier := &fakeVerifier{validToken: "good-token", clerkID: "user_abc"}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var gotClerkID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClerkID = httputil.GetClerkID(r)
		w.WriteHeader(http.StatusOK)
	})
	handler := Auth(verifier, logger)(next)

	tests := []struct {
		name       string
		path       string
		authHeader string
		wantStatus int
		wantClerk  string
	}{
		{
			name:       "public root",
			path:       "/",
			wantStatus: http.StatusOK,
		},
		{
			name:       "public health",
			path:       "/health",
			wantStatus: http.StatusOK,
		},
		{
			name:       "public webhook",
			path:       "/api/users/webhook",
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing token",
			path:       "/api/projects",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed header",
			path:       "/api/projects",
			authHeader: "Token good-token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			path:       "/api/projects",
			authHeader: "Bearer bad-token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token",
			path:       "/api/projects",
			authHeader: "Bearer good-token",
			wantStatus: http.StatusOK,
			wantClerk:  "user_abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotClerkID = ""
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantClerk != "" && gotClerkID != tt.wantClerk {
				t.Errorf("clerk ID in context = %q, want %q", gotClerkID, tt.wantClerk)
			}
		})
	}
}
