package httputil

import (
	"context"
	"net/http"
)

// Context key type to avoid collisions
type contextKey string

const (
	clerkIDKey contextKey = "clerkID"
)

// WithClerkID adds the authenticated Clerk user ID to the request context
func WithClerkID(r *http.Request, clerkID string) *http.Request {
	ctx := context.WithValue(r.Context(), clerkIDKey, clerkID)
	return r.WithContext(ctx)
}

// GetClerkID retrieves the Clerk user ID from context, returns empty string if not found
func GetClerkID(r *http.Request) string {
	clerkID, _ := r.Context().Value(clerkIDKey).(string)
	return clerkID
}
